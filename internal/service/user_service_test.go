package service_test

import (
	"context"
	"testing"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model"
	"auth-web-server/internal/security"
	"auth-web-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := service.NewUserService(userRepo)

	var saved *model.User
	userRepo.On("ExistsByEmail", ctx, "new@x.com").Return(false, nil)
	userRepo.On("CreateUser", ctx, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.User) }).
		Return(&model.User{UUID: testUserUUID, Email: "new@x.com", Name: "Иван"}, nil)

	created, err := svc.Register(ctx, "new@x.com", "P@ssw0rd123", "Иван")

	require.NoError(t, err)
	assert.Equal(t, "new@x.com", created.Email)

	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.UUID)
	// в БД уходит bcrypt хэш, а не исходный пароль
	assert.NotEqual(t, "P@ssw0rd123", saved.PasswordHash)
	assert.True(t, security.CheckPassword("P@ssw0rd123", saved.PasswordHash))
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := service.NewUserService(userRepo)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"email без @", "not-an-email", "P@ssw0rd123"},
		{"короткий пароль", "new@x.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Register(ctx, tt.email, tt.password, "Иван")
			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
			assert.Nil(t, created)
		})
	}

	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := service.NewUserService(userRepo)

	userRepo.On("ExistsByEmail", ctx, "taken@x.com").Return(true, nil)

	created, err := svc.Register(ctx, "taken@x.com", "P@ssw0rd123", "Иван")

	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
	assert.Nil(t, created)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := service.NewUserService(userRepo)

	userRepo.On("FindByUUID", ctx, testUserUUID).Return(
		&model.User{UUID: testUserUUID, Email: "a@x.com", Name: "Иван"}, nil)

	user, err := svc.GetUser(ctx, testUserUUID)

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := service.NewUserService(userRepo)

	userRepo.On("FindByUUID", ctx, "missing-uuid").Return(nil, apperrors.ErrUserNotFound)

	user, err := svc.GetUser(ctx, "missing-uuid")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}
