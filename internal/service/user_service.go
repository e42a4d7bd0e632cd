package service

import (
	"context"
	"fmt"
	"strings"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"

	"github.com/google/uuid"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository}
}

func (s *UserService) Register(ctx context.Context, email string, password string, name string) (*model.User, error) {
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("[UserService] некорректный email: %w", apperrors.ErrBadRequest)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("[UserService] пароль должен содержать минимум 8 символов: %w", apperrors.ErrBadRequest)
	}

	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("[UserService] ошибка проверки email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, userUUID string) (*model.User, error) {
	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}
	return user, nil
}
