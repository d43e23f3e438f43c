package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	// InvalidCredentials is shared by unknown users and wrong passwords.
	InvalidCredentials = &Failure{Code: http.StatusUnauthorized, Message: "invalid username or password"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for a missing record. message is shown as is.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// InvalidTransition reports a lifecycle move that the current status does not allow.
func InvalidTransition(message string) error {
	return Conflict(message)
}

// PreconditionFailed reports a conditional write that lost against a concurrent writer.
func PreconditionFailed(message string) error {
	return &Failure{
		Code:    http.StatusPreconditionFailed,
		Message: message,
	}
}

// StoreUnavailable reports that the backing store could not be reached.
func StoreUnavailable(message string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
