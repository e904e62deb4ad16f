package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUsers(ctx context.Context) (Users, error)
	UserExists(ctx context.Context, id UUID) (bool, error)
	CreateUser(ctx context.Context, u User) (*User, error)
	UpdateUser(ctx context.Context, u User) (*User, error)
	DeleteUser(ctx context.Context, id UUID) error
}
