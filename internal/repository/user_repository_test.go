package repository_test

import (
	"context"
	"testing"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model"
	"auth-web-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepository(t *testing.T) (*repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repository.NewUserRepository(&config.Database{DB: sqlxDB}), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestUserRepository(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(testUserUUID, "a@x.com", "Иван", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "email", "name", "created_at"}).
			AddRow(testUserUUID, "a@x.com", "Иван", now))

	created, err := repo.CreateUser(ctx, &model.User{
		UUID:         testUserUUID,
		Email:        "a@x.com",
		Name:         "Иван",
		PasswordHash: "hash",
	})

	require.NoError(t, err)
	assert.Equal(t, testUserUUID, created.UUID)
	assert.Equal(t, "a@x.com", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})

	created, err := repo.CreateUser(ctx, &model.User{
		UUID:         testUserUUID,
		Email:        "a@x.com",
		PasswordHash: "hash",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
	assert.Nil(t, created)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery(`SELECT uuid, email, name, password_hash, created_at FROM users WHERE email`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "email", "name", "password_hash", "created_at"}).
			AddRow(testUserUUID, "a@x.com", "Иван", "hash", time.Now()))

	user, err := repo.FindByEmail(ctx, "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, testUserUUID, user.UUID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery(`SELECT uuid, email, name, password_hash, created_at FROM users WHERE email`).
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "email", "name", "password_hash", "created_at"}))

	user, err := repo.FindByEmail(ctx, "ghost@x.com")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_FindByUUID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery(`SELECT uuid, email, name, password_hash, created_at FROM users WHERE uuid`).
		WithArgs("missing-uuid").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "email", "name", "password_hash", "created_at"}))

	user, err := repo.FindByUUID(ctx, "missing-uuid")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestUserRepository(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(ctx, "a@x.com")

	require.NoError(t, err)
	assert.True(t, exists)
}
