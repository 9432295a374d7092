package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nikolayk812/foodnodes/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := apperrors.NotFound("cart item", "42")
	assert.Equal(t, "NOT_FOUND: cart item with id 42 not found: resource not found", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	wrapped := fmt.Errorf("api.RemoveCartItem: %w", err)
	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, apperrors.HTTPStatus(wrapped))

	assert.Equal(t, "INVALID_INPUT: bad", (&apperrors.AppError{Code: "INVALID_INPUT", Message: "bad"}).Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: apperrors.InvalidInput("x"), want: http.StatusBadRequest},
		{err: apperrors.Unauthorized("x"), want: http.StatusUnauthorized},
		{err: apperrors.Conflict("x"), want: http.StatusConflict},
		{err: apperrors.Unavailable("x", errors.New("down")), want: http.StatusServiceUnavailable},
		{err: apperrors.Internal(errors.New("x")), want: http.StatusInternalServerError},
		{err: fmt.Errorf("wrap: %w", apperrors.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("wrap: %w", apperrors.ErrServiceUnavail), want: http.StatusServiceUnavailable},
		{err: errors.New("plain"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusNotFound, want: apperrors.ErrNotFound},
		{status: http.StatusBadRequest, want: apperrors.ErrInvalidInput},
		{status: http.StatusUnprocessableEntity, want: apperrors.ErrInvalidInput},
		{status: http.StatusUnauthorized, want: apperrors.ErrUnauthorized},
		{status: http.StatusForbidden, want: apperrors.ErrUnauthorized},
		{status: http.StatusConflict, want: apperrors.ErrConflict},
		{status: http.StatusBadGateway, want: apperrors.ErrServiceUnavail},
	}

	for _, tt := range tests {
		err := apperrors.FromStatus(tt.status, "", "msg")
		assert.ErrorIs(t, err, tt.want)
		assert.Equal(t, tt.status, err.Status)
		assert.Equal(t, http.StatusText(tt.status), err.Code)
	}

	teapot := apperrors.FromStatus(http.StatusTeapot, "TEAPOT", "short and stout")
	assert.NoError(t, teapot.Unwrap())
	assert.Equal(t, "TEAPOT", teapot.Code)
}
