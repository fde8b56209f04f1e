// Package apierrors models the structured (family, code) errors the backend
// returns on non-success responses.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
)

type Family string

const FamilyAccount Family = "ACCOUNT"

type Code string

const (
	CodeUsernameAlreadyExists  Code = "USERNAME_ALREADY_EXISTS"
	CodeUsernameDoesNotExist   Code = "USERNAME_DOES_NOT_EXIST"
	CodePhoneDoesNotExist      Code = "PHONE_DOES_NOT_EXIST"
	CodeUnauthorized           Code = "UNAUTHORIZED"
	CodePasswordIsError        Code = "PASSWORD_IS_ERROR"
	CodeCaptchaIsError         Code = "CAPTCHA_IS_ERROR"
	CodeSmsSendTooFrequent     Code = "SMS_SEND_TOO_FREQUENT"
	CodeSmsCodeExpired         Code = "SMS_CODE_EXPIRED"
	CodeSmsCodeIsError         Code = "SMS_CODE_IS_ERROR"
	CodeUserIsThisCompanyAdmin Code = "USER_IS_THIS_COMPANY_ADMIN"
	CodeNotInCompany           Code = "NOT_IN_COMPANY"
)

// GenericMessage is shown when neither the lookup table nor the server
// supplied a message.
const GenericMessage = "操作失败"

// Key identifies one error shape.
type Key struct {
	Family Family
	Code   Code
}

func (k Key) String() string {
	return string(k.Family) + "/" + string(k.Code)
}

var messages = map[Key]string{
	{FamilyAccount, CodeUsernameAlreadyExists}:  "用户名已存在",
	{FamilyAccount, CodeUsernameDoesNotExist}:   "用户名不存在",
	{FamilyAccount, CodePhoneDoesNotExist}:      "手机号不存在",
	{FamilyAccount, CodeUnauthorized}:           "登录已失效，请重新登录",
	{FamilyAccount, CodePasswordIsError}:        "密码错误",
	{FamilyAccount, CodeCaptchaIsError}:         "验证码错误",
	{FamilyAccount, CodeSmsSendTooFrequent}:     "短信发送过于频繁，请稍后再试",
	{FamilyAccount, CodeSmsCodeExpired}:         "短信验证码已过期",
	{FamilyAccount, CodeSmsCodeIsError}:         "短信验证码错误",
	{FamilyAccount, CodeUserIsThisCompanyAdmin}: "该用户已是企业管理员",
	{FamilyAccount, CodeNotInCompany}:           "用户不在该企业中",
}

// Known reports whether the pair belongs to the global taxonomy.
func Known(family Family, code Code) bool {
	_, ok := messages[Key{family, code}]
	return ok
}

// Message resolves the user-facing text for a pair: the fixed table first,
// then the server's own message, then GenericMessage.
func Message(family Family, code Code, serverMessage string) string {
	if msg, ok := messages[Key{family, code}]; ok {
		return msg
	}
	if serverMessage != "" {
		return serverMessage
	}
	return GenericMessage
}

// IsAuthorizationDenied reports the code that invalidates the session even
// when the HTTP status is not 401. The family is not consulted.
func IsAuthorizationDenied(code Code) bool {
	return code == CodeUnauthorized
}

// Error is a structured backend failure.
type Error struct {
	Family        Family
	Code          Code
	Message       string // resolved, user-facing
	ServerMessage string // as sent by the backend, may be empty
	Status        int
	Extra         map[string]json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s/%s (%d): %s", e.Family, e.Code, e.Status, e.Message)
}

func (e *Error) Key() Key {
	return Key{e.Family, e.Code}
}

// Known reports whether the error's pair is in the global taxonomy.
func (e *Error) Known() bool {
	return Known(e.Family, e.Code)
}

// Is matches another *Error with the same family and code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Family == e.Family && other.Code == e.Code
}

// New builds an Error with its message resolved.
func New(family Family, code Code, status int, serverMessage string) *Error {
	return &Error{
		Family:        family,
		Code:          code,
		Message:       Message(family, code, serverMessage),
		ServerMessage: serverMessage,
		Status:        status,
	}
}

// FromBody decodes the wire error shape {family, code, message?, ...extra}.
// ok is false when body is not JSON or carries no family and code.
func FromBody(status int, body []byte) (apiErr *Error, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false
	}
	family := stringField(fields, "family")
	code := stringField(fields, "code")
	if family == "" || code == "" {
		return nil, false
	}
	apiErr = New(Family(family), Code(code), status, stringField(fields, "message"))

	for _, name := range []string{"family", "code", "message"} {
		delete(fields, name)
	}
	if len(fields) > 0 {
		apiErr.Extra = fields
	}
	return apiErr, true
}

// ServerMessageOf returns the "message" field of a JSON body, if any.
func ServerMessageOf(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	return stringField(fields, "message")
}

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// As extracts a structured error from err's chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
