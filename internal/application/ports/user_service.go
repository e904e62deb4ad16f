package ports

import (
	"context"

	"civic-issues-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	CreateUser(ctx context.Context, f user.Fields) (*user.User, error)
	ReplaceUser(ctx context.Context, uuid user.UUID, f user.Fields) (*user.User, error)
	PatchUser(ctx context.Context, uuid user.UUID, p user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) error
}
