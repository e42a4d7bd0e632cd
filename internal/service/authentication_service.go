package service

import (
	"context"
	"fmt"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
	"auth-web-server/internal/util"
)

type AuthenticationService struct {
	refreshTokenRepository ports.RefreshTokenRepositoryInterface
	jwtService             ports.JWTServiceInterface
	userRepository         ports.UserRepository
}

func NewAuthenticationService(
	refreshTokenRepository ports.RefreshTokenRepositoryInterface,
	jwtService ports.JWTServiceInterface,
	userRepository ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		refreshTokenRepository,
		jwtService,
		userRepository,
	}
}

// Login аутентифицирует пользователя по email и паролю.
// Выпускает пару токенов и сохраняет refresh токен в хранилище с TTL,
// равным времени жизни refresh токена. Сохранение перезаписывает прежний
// токен пользователя, так что действующим остаётся только новый.
//
// Возвращает:
//   - model.TokensPair
//   - apperrors.ErrUserNotFound, если email не зарегистрирован
//   - apperrors.ErrInvalidPassword при неверном пароле
func (s *AuthenticationService) Login(ctx context.Context, email string, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("пользователь не найден: %w", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	tokens, err := s.jwtService.GenerateTokens(user.UUID, user.Name)
	if err != nil {
		return nil, util.LogError("ошибка генерации токенов", err)
	}

	if err := s.refreshTokenRepository.Save(ctx, user.UUID, tokens.RefreshToken, s.jwtService.RefreshTTL()); err != nil {
		return nil, util.LogError("ошибка сохранения refresh токена", err)
	}

	return tokens, nil
}

// Logout завершает сессию пользователя.
// Принимается токен любого типа: нужен только subject, чтобы удалить
// refresh токен из хранилища. Удаление отсутствующего токена не ошибка,
// повторный logout безвреден.
func (s *AuthenticationService) Logout(ctx context.Context, authorizationHeader string) error {
	token, err := security.ExtractBearerToken(authorizationHeader)
	if err != nil {
		return err
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return err
	}

	if err := s.refreshTokenRepository.Delete(ctx, claims.Subject); err != nil {
		return util.LogError("не удалось удалить refresh токен", err)
	}

	return nil
}

// RefreshAccessToken выпускает новый access токен по refresh токену.
// Выполняет следующие проверки:
//  1. Предъявленный токен обязан быть типа refresh, access токен
//     отклоняется сразу (apperrors.ErrInvalidTokenType).
//  2. В хранилище должен существовать refresh токен пользователя
//     (apperrors.ErrRefreshTokenNotFound).
//  3. Сохранённый токен должен посимвольно совпадать с предъявленным:
//     так отклоняются устаревшие токены, даже если их подпись ещё валидна
//     (apperrors.ErrInvalidRefreshToken).
//
// Refresh токен при этом не перевыпускается — возвращается только access токен.
func (s *AuthenticationService) RefreshAccessToken(ctx context.Context, authorizationHeader string) (string, error) {
	refreshToken, err := security.ExtractBearerToken(authorizationHeader)
	if err != nil {
		return "", err
	}

	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", apperrors.ErrInvalidTokenType
	}

	storedRefreshToken, err := s.refreshTokenRepository.Get(ctx, claims.Subject)
	if err != nil {
		return "", util.LogError("не удалось прочитать refresh токен", err)
	}
	if storedRefreshToken == "" {
		return "", apperrors.ErrRefreshTokenNotFound
	}
	if storedRefreshToken != refreshToken {
		return "", apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepository.FindByUUID(ctx, claims.Subject)
	if err != nil {
		return "", fmt.Errorf("пользователь не найден: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.UUID, user.Name)
	if err != nil {
		return "", util.LogError("ошибка генерации access токена", err)
	}

	return accessToken, nil
}
