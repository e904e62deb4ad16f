package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"civic-issues-api/internal/domain/user"
	"civic-issues-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row, u *User) error {
	return row.Scan(
		&u.ID,
		&u.Firstname,
		&u.Lastname,
		&u.Role,
		&u.CreatedAt,
		&u.Revision,
	)
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := Users{}
	for rows.Next() {
		u := new(User)
		if err = scan(rows, u); err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.UUID) (*user.User, error) {
	u := new(User)
	if err := scan(r.db.QueryRow(ctx, SelectUserByID, id.String()), u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UserExists(ctx context.Context, id user.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectUserExists, id.String()).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)
	err := scan(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Firstname, req.Lastname, string(req.Role), req.CreatedAt,
	), u)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrDuplicateName
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)
	err := scan(r.db.QueryRow(
		ctx,
		UpdateUserByID,
		req.Firstname, req.Lastname, string(req.Role), req.ID.String(),
	), u)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrDuplicateName
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.UUID) error {
	tag, err := r.db.Exec(ctx, DeleteUserByID, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}
