package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var signingMethod = jwt.SigningMethodHS256

// Claims : полезная нагрузка подписанного токена.
// Type различает access и refresh токены, Name присутствует только в access.
type Claims struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService подписывает и проверяет токены одним симметричным ключом.
// Ключ декодируется из base64 один раз при создании сервиса и не меняется
// до перезапуска процесса. Ключ никогда не логируется.
type JWTService struct {
	signingKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования секретного ключа: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("секретный ключ пуст")
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга access_token_ttl: %w", err)
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга refresh_token_ttl: %w", err)
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("время жизни токенов должно быть положительным")
	}

	return &JWTService{
		signingKey: key,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// RefreshTTL : время жизни refresh токена, оно же TTL записи в хранилище.
func (service *JWTService) RefreshTTL() time.Duration {
	return service.refreshTTL
}

// GenerateTokens выпускает пару access+refresh токенов для пользователя.
// Оба токена подписываются независимо одним ключом и различаются клеймом type.
func (service *JWTService) GenerateTokens(userUUID string, name string) (*model.TokensPair, error) {
	accessToken, err := service.GenerateAccessToken(userUUID, name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	refreshClaims := Claims{
		Type: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.refreshTTL)),
		},
	}
	refreshToken, err := jwt.NewWithClaims(signingMethod, refreshClaims).SignedString(service.signingKey)
	if err != nil {
		return nil, fmt.Errorf("ошибка подписи refresh токена: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GenerateAccessToken выпускает только access токен, не затрагивая refresh состояние.
// Используется при обновлении access токена по refresh токену.
func (service *JWTService) GenerateAccessToken(userUUID string, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: TokenTypeAccess,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.accessTTL)),
		},
	}

	accessToken, err := jwt.NewWithClaims(signingMethod, claims).SignedString(service.signingKey)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи access токена: %w", err)
	}

	return accessToken, nil
}

// ValidateToken проверяет подпись и срок действия токена.
// Каждый вид сбоя отображается в свою доменную ошибку:
// пустой токен, повреждённая структура, просрочка, неверная подпись,
// неподдерживаемый алгоритм.
func (service *JWTService) ValidateToken(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, apperrors.ErrEmptyToken
	}

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != signingMethod {
			return nil, fmt.Errorf("неожиданный способ подписи токена: %v", token.Header["alg"])
		}
		return service.signingKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, apperrors.ErrInvalidTokenSignature
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, apperrors.ErrUnsupportedToken
		default:
			return nil, apperrors.ErrMalformedToken
		}
	}
	if !jwtToken.Valid {
		return nil, apperrors.ErrMalformedToken
	}

	return claims, nil
}

// ExtractBearerToken достаёт токен из значения заголовка Authorization.
func ExtractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", apperrors.ErrEmptyToken
	}
	return strings.TrimPrefix(header, BearerPrefix), nil
}
