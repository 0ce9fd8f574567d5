package models

// AuthErrorCode classifies identity-provider failures into the categories
// the storefront reacts to
type AuthErrorCode string

const (
	AuthErrInvalidCredentials AuthErrorCode = "invalid_credentials"
	AuthErrEmailNotConfirmed  AuthErrorCode = "email_not_confirmed"
	AuthErrEmailExists        AuthErrorCode = "email_exists"
	AuthErrNetwork            AuthErrorCode = "network"
	AuthErrServer             AuthErrorCode = "server"
)

// AuthError is the structured error value every session operation returns.
// It crosses the component boundary as a value, never a panic, so callers
// branch on the code field instead of unwrapping exception chains.
type AuthError struct {
	Code    AuthErrorCode `json:"code"`
	Message string        `json:"message"`
}

func (e *AuthError) Error() string {
	return string(e.Code) + ": " + e.Message
}
