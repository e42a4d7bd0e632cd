package security

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model/requestresponse"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// AuthenticatedUser : отметка об аутентифицированном пользователе в контексте запроса.
type AuthenticatedUser struct {
	UUID string
	Name string
}

// PublicEndpoints : пути, доступные без аутентификации.
// Сравнение строгое, по полному совпадению пути.
var PublicEndpoints = map[string]struct{}{
	"/api/v1/user/create":  {},
	"/api/v1/auth/login":   {},
	"/api/v1/auth/refresh": {},
}

func IsPublicEndpoint(path string) bool {
	_, ok := PublicEndpoints[path]
	return ok
}

// TokenValidator : часть JWT сервиса, нужная middleware.
type TokenValidator interface {
	ValidateToken(tokenStr string) (*Claims, error)
}

// AuthMiddleware — фильтр аутентификации на каждый запрос.
// Для публичных путей токен не разбирается вовсе. Для остальных: если заголовок
// отсутствует, токен невалиден или это refresh токен, запрос проходит дальше
// неаутентифицированным — отклонять его должен RequireAuthentication либо сам
// обработчик. Успешно проверенный access токен кладёт пользователя в контекст.
func AuthMiddleware(jwtService TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if IsPublicEndpoint(request.URL.Path) {
				next.ServeHTTP(writer, request)
				return
			}

			authorizationHeader := request.Header.Get(AuthorizationHeader)
			if !strings.HasPrefix(authorizationHeader, BearerPrefix) {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(authorizationHeader, BearerPrefix))
			if err != nil {
				// ошибки разбора здесь глушатся: запрос продолжается неаутентифицированным
				next.ServeHTTP(writer, request)
				return
			}

			if claims.Type != TokenTypeAccess {
				// refresh токен никогда не даёт доступа к ресурсам
				next.ServeHTTP(writer, request)
				return
			}

			user := &AuthenticatedUser{
				UUID: claims.Subject,
				Name: claims.Name,
			}
			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, user))
			next.ServeHTTP(writer, req)
		})
	}
}

// RequireAuthentication отклоняет с 401 запросы, для которых AuthMiddleware
// не положил пользователя в контекст.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, err := GetAuthenticatedUser(request.Context()); err != nil {
			status, code, message := apperrors.Translate(err)
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(status)
			json.NewEncoder(writer).Encode(requestresponse.Fail(code, message))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

func GetAuthenticatedUser(ctx context.Context) (*AuthenticatedUser, error) {
	user, ok := ctx.Value(UserContextKey).(*AuthenticatedUser)
	if !ok || user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
