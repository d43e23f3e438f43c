package failure_test

import (
	"errors"
	"fmt"
	"frontdesk/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("guest_name is required")), code: http.StatusBadRequest, message: "guest_name is required"},
		{name: "bad request from string", err: failure.BadRequestFromString("limit must be a number"), code: http.StatusBadRequest, message: "limit must be a number"},
		{name: "unauthorized", err: failure.Unauthorized("Token has expired"), code: http.StatusUnauthorized, message: "Token has expired"},
		{name: "not found", err: failure.NotFound("reservation not found"), code: http.StatusNotFound, message: "reservation not found"},
		{name: "invalid transition", err: failure.InvalidTransition("reservation is reserved, it must be checked-in"), code: http.StatusConflict, message: "reservation is reserved, it must be checked-in"},
		{name: "precondition failed", err: failure.PreconditionFailed("already processed by someone else"), code: http.StatusPreconditionFailed, message: "already processed by someone else"},
		{name: "store unavailable", err: failure.StoreUnavailable("reservation store unavailable"), code: http.StatusServiceUnavailable, message: "reservation store unavailable"},
		{name: "forbidden", err: failure.Forbidden("only the addressee may respond"), code: http.StatusForbidden, message: "only the addressee may respond"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, message: "boom"},
		{name: "invalid credentials", err: failure.InvalidCredentials, code: http.StatusUnauthorized, message: "invalid username or password"},
		{name: "forbidden error", err: failure.ForbiddenError, code: http.StatusForbidden, message: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, failure.Is(tt.err, tt.code))
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestWrappedFailureKeepsCode(t *testing.T) {
	err := fmt.Errorf("failed to check in: %w", failure.PreconditionFailed("already processed by someone else"))

	assert.Equal(t, http.StatusPreconditionFailed, failure.GetCode(err))
	assert.True(t, failure.Is(err, http.StatusPreconditionFailed))
	assert.False(t, failure.Is(err, http.StatusConflict))
}

func TestPlainErrorIsInternal(t *testing.T) {
	err := errors.New("connection reset")

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.False(t, failure.Is(err, http.StatusInternalServerError))
}
