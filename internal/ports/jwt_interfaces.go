package ports

import (
	"context"
	"time"

	"auth-web-server/internal/model"
	"auth-web-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateTokens(userUUID string, name string) (*model.TokensPair, error)
	GenerateAccessToken(userUUID string, name string) (string, error)
	ValidateToken(tokenStr string) (*security.Claims, error)
	RefreshTTL() time.Duration
}

// RefreshTokenRepositoryInterface : внешнее key-value хранилище refresh токенов.
// На пользователя хранится ровно один актуальный токен, запись живёт не дольше ttl.
type RefreshTokenRepositoryInterface interface {
	Save(ctx context.Context, userUUID string, token string, ttl time.Duration) error
	// Get возвращает пустую строку без ошибки, если токена нет
	Get(ctx context.Context, userUUID string) (string, error)
	Delete(ctx context.Context, userUUID string) error
}
