package apperrors

import (
	"errors"
	"net/http"
)

// Фиксированный набор доменных ошибок сервиса.
// Каждая ошибка отображается в пару (HTTP статус, машинный код) через Translate.
var (
	// токены
	ErrEmptyToken            = errors.New("токен отсутствует или имеет неверный формат")
	ErrMalformedToken        = errors.New("повреждённый токен")
	ErrExpiredToken          = errors.New("токен просрочен")
	ErrInvalidTokenSignature = errors.New("неверная подпись токена")
	ErrUnsupportedToken      = errors.New("неподдерживаемый формат токена")
	ErrInvalidTokenType      = errors.New("неверный тип токена")

	// refresh-токены
	ErrRefreshTokenNotFound = errors.New("refresh токен не найден на сервере")
	ErrInvalidRefreshToken  = errors.New("невалидный refresh токен")

	// пользователи и доступ
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrInvalidPassword = errors.New("неверный пароль")
	ErrEmailExists     = errors.New("email уже занят")
	ErrUnauthorized    = errors.New("требуется авторизация")
	ErrForbidden       = errors.New("доступ запрещён")

	// общие
	ErrBadRequest = errors.New("некорректный запрос")
	ErrNotFound   = errors.New("ресурс не найден")
)

type errorCode struct {
	status int
	code   string
}

var codes = map[error]errorCode{
	ErrEmptyToken:            {http.StatusBadRequest, "EMPTY_TOKEN"},
	ErrMalformedToken:        {http.StatusUnauthorized, "MALFORMED_TOKEN"},
	ErrExpiredToken:          {http.StatusUnauthorized, "EXPIRED_TOKEN"},
	ErrInvalidTokenSignature: {http.StatusUnauthorized, "INVALID_TOKEN_SIGNATURE"},
	ErrUnsupportedToken:      {http.StatusBadRequest, "UNSUPPORTED_TOKEN"},
	ErrInvalidTokenType:      {http.StatusUnauthorized, "INVALID_TOKEN_TYPE"},
	ErrRefreshTokenNotFound:  {http.StatusUnauthorized, "REFRESH_TOKEN_NOT_FOUND"},
	ErrInvalidRefreshToken:   {http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
	ErrUserNotFound:          {http.StatusNotFound, "USER_NOT_FOUND"},
	ErrInvalidPassword:       {http.StatusBadRequest, "INVALID_PASSWORD"},
	ErrEmailExists:           {http.StatusConflict, "EMAIL_ALREADY_EXISTS"},
	ErrUnauthorized:          {http.StatusUnauthorized, "UNAUTHORIZED"},
	ErrForbidden:             {http.StatusForbidden, "FORBIDDEN"},
	ErrBadRequest:            {http.StatusBadRequest, "BAD_REQUEST"},
	ErrNotFound:              {http.StatusNotFound, "NOT_FOUND"},
}

// Translate : отображает доменную ошибку в HTTP статус, машинный код и сообщение.
// Нераспознанные ошибки деградируют в 500 SERVER_ERROR без утечки деталей клиенту.
func Translate(err error) (status int, code string, message string) {
	for sentinel, ec := range codes {
		if errors.Is(err, sentinel) {
			return ec.status, ec.code, sentinel.Error()
		}
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "внутренняя ошибка сервера"
}
