package ports

import (
	"context"

	"auth-web-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, email string, password string, name string) (*model.User, error)
	GetUser(ctx context.Context, uuid string) (*model.User, error)
}
