package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"auth-web-server/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{apperrors.ErrEmptyToken, http.StatusBadRequest, "EMPTY_TOKEN"},
		{apperrors.ErrMalformedToken, http.StatusUnauthorized, "MALFORMED_TOKEN"},
		{apperrors.ErrExpiredToken, http.StatusUnauthorized, "EXPIRED_TOKEN"},
		{apperrors.ErrInvalidTokenSignature, http.StatusUnauthorized, "INVALID_TOKEN_SIGNATURE"},
		{apperrors.ErrUnsupportedToken, http.StatusBadRequest, "UNSUPPORTED_TOKEN"},
		{apperrors.ErrInvalidTokenType, http.StatusUnauthorized, "INVALID_TOKEN_TYPE"},
		{apperrors.ErrRefreshTokenNotFound, http.StatusUnauthorized, "REFRESH_TOKEN_NOT_FOUND"},
		{apperrors.ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
		{apperrors.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{apperrors.ErrInvalidPassword, http.StatusBadRequest, "INVALID_PASSWORD"},
		{apperrors.ErrEmailExists, http.StatusConflict, "EMAIL_ALREADY_EXISTS"},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{apperrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{apperrors.ErrBadRequest, http.StatusBadRequest, "BAD_REQUEST"},
		{apperrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code, message := apperrors.Translate(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.err.Error(), message)
		})
	}
}

func TestTranslate_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("[UserService] контекст: %w", apperrors.ErrUserNotFound)

	status, code, _ := apperrors.Translate(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "USER_NOT_FOUND", code)
}

func TestTranslate_UnknownError(t *testing.T) {
	status, code, message := apperrors.Translate(errors.New("внутренние детали, которых клиент видеть не должен"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "SERVER_ERROR", code)
	// детали исходной ошибки не протекают в сообщение
	assert.Equal(t, "внутренняя ошибка сервера", message)
}
