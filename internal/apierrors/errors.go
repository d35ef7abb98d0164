// Package apierrors defines the errors services return to the transport layer.
// Every APIError carries the HTTP status it maps to and a message that is safe
// to show to clients.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Codes group APIErrors by kind.
const (
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeTooMany      = "too_many_requests"
	CodeInternal     = "internal_error"
)

// APIError is an error with a client-facing status and message.
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As extracts an APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HasCode reports whether err is an APIError with the given code.
func HasCode(err error, code string) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Code == code
}

// FromError returns err as an APIError, wrapping unknown errors as internal.
func FromError(err error) *APIError {
	if apiErr, ok := As(err); ok {
		return apiErr
	}
	return NewErrInternalServerError(err)
}

func newErr(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func NewErrValidation(message string) *APIError {
	return newErr(http.StatusBadRequest, CodeValidation, message)
}

func NewErrInvalidRequestBody(err error) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeValidation, Message: "Invalid request body", Err: err}
}

func NewErrUserIDRequired() *APIError {
	return NewErrValidation("User ID is required")
}

func NewErrInvalidCredentials() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "Invalid email or password")
}

func NewErrCurrentPasswordIncorrect() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "Current password is incorrect")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "Access denied. No token provided.")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token")
}

func NewErrUserNoLongerExists() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "User no longer exists.")
}

func NewErrUserDeactivated() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "User account is deactivated.")
}

func NewErrPasswordChanged() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "User recently changed password. Please log in again.")
}

func NewErrUserNotFoundOrInactive() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "User not found or inactive")
}

func NewErrAuthenticationRequired() *APIError {
	return newErr(http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
}

func NewErrRoleNotAuthorized(role string) *APIError {
	return newErr(http.StatusForbidden, CodeForbidden, fmt.Sprintf("Role '%s' is not authorized to access this resource", role))
}

func NewErrAdminRequired() *APIError {
	return newErr(http.StatusForbidden, CodeForbidden, "Only admins can create another admin user")
}

func NewErrAccessDenied(action string) *APIError {
	return newErr(http.StatusForbidden, CodeForbidden, fmt.Sprintf("Access denied. You can only %s your own data.", action))
}

func NewErrUserNotFound(id string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: "User not found", Err: fmt.Errorf("user %q", id)}
}

func NewErrAvatarNotFound() *APIError {
	return newErr(http.StatusNotFound, CodeNotFound, "Avatar not found")
}

func NewErrRouteNotFound(path string) *APIError {
	return newErr(http.StatusNotFound, CodeNotFound, fmt.Sprintf("The requested route %s does not exist", path))
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: CodeConflict, Message: "User with this email already exists", Err: fmt.Errorf("email %q", email)}
}

func NewErrTooManyRequests() *APIError {
	return newErr(http.StatusTooManyRequests, CodeTooMany, "Too many requests from this IP, please try again later.")
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal Server Error", Err: err}
}
