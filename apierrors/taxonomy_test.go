package apierrors_test

import (
	"fmt"
	"testing"

	"github.com/jrsteele09/ainote-client/apierrors"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	t.Run("fixed table", func(t *testing.T) {
		msg := apierrors.Message(apierrors.FamilyAccount, apierrors.CodePasswordIsError, "bad credentials")
		require.Equal(t, "密码错误", msg)
	})

	t.Run("unknown code falls back to server message", func(t *testing.T) {
		msg := apierrors.Message(apierrors.FamilyAccount, "QUOTA_EXCEEDED", "quota exceeded")
		require.Equal(t, "quota exceeded", msg)
	})

	t.Run("unknown code without server message", func(t *testing.T) {
		msg := apierrors.Message("TEMPLATE", "LOCKED", "")
		require.Equal(t, apierrors.GenericMessage, msg)
	})
}

func TestEveryAccountCodeHasAMessage(t *testing.T) {
	for _, k := range apierrors.AccountErrors {
		require.True(t, apierrors.Known(k.Family, k.Code), k.String())
		require.NotEqual(t, apierrors.GenericMessage, apierrors.Message(k.Family, k.Code, ""), k.String())
	}
}

func TestFromBody(t *testing.T) {
	t.Run("structured body", func(t *testing.T) {
		apiErr, ok := apierrors.FromBody(400, []byte(`{"family":"ACCOUNT","code":"PASSWORD_IS_ERROR","message":"wrong","attempts":3}`))
		require.True(t, ok)
		require.Equal(t, apierrors.FamilyAccount, apiErr.Family)
		require.Equal(t, apierrors.CodePasswordIsError, apiErr.Code)
		require.Equal(t, "密码错误", apiErr.Message)
		require.Equal(t, "wrong", apiErr.ServerMessage)
		require.Equal(t, 400, apiErr.Status)
		require.JSONEq(t, `3`, string(apiErr.Extra["attempts"]))
		require.True(t, apiErr.Known())
	})

	t.Run("unknown pair is still structured", func(t *testing.T) {
		apiErr, ok := apierrors.FromBody(409, []byte(`{"family":"TEMPLATE","code":"IN_USE"}`))
		require.True(t, ok)
		require.False(t, apiErr.Known())
		require.Equal(t, apierrors.GenericMessage, apiErr.Message)
		require.Nil(t, apiErr.Extra)
	})

	t.Run("not json", func(t *testing.T) {
		_, ok := apierrors.FromBody(502, []byte("<html>bad gateway</html>"))
		require.False(t, ok)
	})

	t.Run("json without family and code", func(t *testing.T) {
		_, ok := apierrors.FromBody(500, []byte(`{"message":"boom"}`))
		require.False(t, ok)
		require.Equal(t, "boom", apierrors.ServerMessageOf([]byte(`{"message":"boom"}`)))
	})
}

func TestError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("login: %w", apierrors.New(apierrors.FamilyAccount, apierrors.CodeCaptchaIsError, 400, ""))

	require.ErrorIs(t, err, &apierrors.Error{Family: apierrors.FamilyAccount, Code: apierrors.CodeCaptchaIsError})
	require.NotErrorIs(t, err, &apierrors.Error{Family: apierrors.FamilyAccount, Code: apierrors.CodePasswordIsError})

	apiErr, ok := apierrors.As(err)
	require.True(t, ok)
	require.Equal(t, "验证码错误", apiErr.Message)
	require.Contains(t, apiErr.Error(), "ACCOUNT/CAPTCHA_IS_ERROR")
}

func TestIsAuthorizationDenied(t *testing.T) {
	require.True(t, apierrors.IsAuthorizationDenied(apierrors.CodeUnauthorized))
	require.False(t, apierrors.IsAuthorizationDenied(apierrors.CodePasswordIsError))
}

func TestDeclaredUnions(t *testing.T) {
	login := apierrors.Declared("authService", "login")
	require.Len(t, login, 11)

	require.True(t, login.Contains(apierrors.New(apierrors.FamilyAccount, apierrors.CodeSmsCodeExpired, 400, "")))
	require.False(t, login.Contains(apierrors.New("TEMPLATE", "IN_USE", 400, "")))
	require.False(t, login.Contains(fmt.Errorf("plain")))

	require.Empty(t, apierrors.Declared("templateService", "detail"))
}
