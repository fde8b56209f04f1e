package apierrors

// Union is the closed set of error shapes an operation declares. It is a
// minimum guarantee: codes outside it can still arrive at runtime.
type Union []Key

// Contains reports whether err is a structured error declared by u.
func (u Union) Contains(err error) bool {
	apiErr, ok := As(err)
	if !ok {
		return false
	}
	for _, k := range u {
		if k == apiErr.Key() {
			return true
		}
	}
	return false
}

// AccountErrors is every code of the ACCOUNT family.
var AccountErrors = Union{
	{FamilyAccount, CodeUsernameAlreadyExists},
	{FamilyAccount, CodeUsernameDoesNotExist},
	{FamilyAccount, CodePhoneDoesNotExist},
	{FamilyAccount, CodeUnauthorized},
	{FamilyAccount, CodePasswordIsError},
	{FamilyAccount, CodeCaptchaIsError},
	{FamilyAccount, CodeSmsSendTooFrequent},
	{FamilyAccount, CodeSmsCodeExpired},
	{FamilyAccount, CodeSmsCodeIsError},
	{FamilyAccount, CodeUserIsThisCompanyAdmin},
	{FamilyAccount, CodeNotInCompany},
}

// declared maps "<service>/<operation>" to the operation's union.
var declared = map[string]Union{
	"authService/login":       AccountErrors,
	"authService/register":    AccountErrors,
	"authService/smsLogin":    AccountErrors,
	"authService/sendSmsCode": AccountErrors,
}

// Declared returns the union an operation declares; operations that
// declare nothing get an empty union.
func Declared(service, operation string) Union {
	return declared[service+"/"+operation]
}
