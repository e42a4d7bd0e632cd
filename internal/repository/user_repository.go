package repository

import (
	"context"
	"database/sql"
	"errors"

	"auth-web-server/config"
	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, email, name, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING uuid, email, name, created_at
	`

	createdUser := &model.User{}
	err := r.QueryRowxContext(ctx, query, user.UUID, user.Email, user.Name, user.PasswordHash).
		Scan(&createdUser.UUID, &createdUser.Email, &createdUser.Name, &createdUser.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, apperrors.ErrEmailExists
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT uuid, email, name, password_hash, created_at FROM users WHERE email = $1`
	var user model.User
	err := r.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	} else if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, email, name, password_hash, created_at FROM users WHERE uuid = $1`
	var user model.User
	err := r.GetContext(ctx, &user, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	} else if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := r.GetContext(ctx, &exists, query, email); err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки email", err)
	}
	return exists, nil
}
