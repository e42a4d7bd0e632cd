package ports

import (
	"context"

	"auth-web-server/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, email string, password string) (*model.TokensPair, error)
	Logout(ctx context.Context, authorizationHeader string) error
	RefreshAccessToken(ctx context.Context, authorizationHeader string) (string, error)
}
