package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenRepository : Redis хранилище refresh токенов.
// Ключ — UUID пользователя, значение — актуальный refresh токен.
// SET перезаписывает предыдущее значение, поэтому на пользователя
// в любой момент действует не больше одного refresh токена.
type RefreshTokenRepository struct {
	client *config.RedisClient
}

func NewRefreshTokenRepository(rdb *config.RedisClient) *RefreshTokenRepository {
	return &RefreshTokenRepository{rdb}
}

func (r *RefreshTokenRepository) Save(ctx context.Context, userUUID string, token string, ttl time.Duration) error {
	if err := r.client.Client.Set(ctx, r.key(userUUID), token, ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения refresh токена в Redis", err)
	}
	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, userUUID string) (string, error) {
	val, err := r.client.Client.Get(ctx, r.key(userUUID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // токена нет
	} else if err != nil {
		return "", util.LogError("ошибка чтения refresh токена из Redis", err)
	}
	return val, nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, userUUID string) error {
	// удаление отсутствующего ключа не ошибка: DEL идемпотентен
	if err := r.client.Client.Del(ctx, r.key(userUUID)).Err(); err != nil {
		return util.LogError("ошибка удаления refresh токена из Redis", err)
	}
	return nil
}

func (r *RefreshTokenRepository) key(userUUID string) string {
	return fmt.Sprintf("refresh_token:%s", userUUID)
}
