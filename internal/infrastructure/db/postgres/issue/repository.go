package issue

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"civic-issues-api/internal/domain/issue"
	"civic-issues-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) issue.Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row, i *Issue) error {
	return row.Scan(
		&i.ID,
		&i.Status,
		&i.Description,
		&i.ImageURL,
		&i.Latitude,
		&i.Longitude,
		&i.Tags,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Revision,
	)
}

func (r *Repository) fetch(ctx context.Context, query string, args ...any) (issue.Issues, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	is := Issues{}
	for rows.Next() {
		i := new(Issue)
		if err = scan(rows, i); err != nil {
			return nil, err
		}
		is = append(is, i)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&is), nil
}

func (r *Repository) FetchIssues(ctx context.Context, sort issue.SortKey) (issue.Issues, error) {
	return r.fetch(ctx, SelectIssuesSorted(sort))
}

func (r *Repository) FetchIssuesByUser(ctx context.Context, userID issue.UUID) (issue.Issues, error) {
	return r.fetch(ctx, SelectIssuesByUser, userID.String())
}

func (r *Repository) FetchIssueByID(ctx context.Context, id issue.UUID) (*issue.Issue, error) {
	i := new(Issue)
	if err := scan(r.db.QueryRow(ctx, SelectIssueByID, id.String()), i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, issue.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(i), nil
}

func (r *Repository) CreateIssue(ctx context.Context, req issue.Issue) (*issue.Issue, error) {
	m, err := toDBModel(req)
	if err != nil {
		return nil, err
	}

	i := new(Issue)
	if err = scan(r.db.QueryRow(
		ctx,
		InsertIssue,
		m.Status, m.Description, m.ImageURL, m.Latitude, m.Longitude, m.Tags, m.UserID.String(), m.CreatedAt,
	), i); err != nil {
		return nil, err
	}

	return fromDBModel(i), nil
}

func (r *Repository) UpdateIssue(ctx context.Context, req issue.Issue) (*issue.Issue, error) {
	m, err := toDBModel(req)
	if err != nil {
		return nil, err
	}

	i := new(Issue)
	if err = scan(r.db.QueryRow(
		ctx,
		UpdateIssueByID,
		m.Status, m.Description, m.ImageURL, m.Latitude, m.Longitude, m.Tags, m.UserID.String(), m.UpdatedAt,
		m.ID.String(),
	), i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, issue.ErrNotFound
		}
		return nil, err
	}

	return fromDBModel(i), nil
}

func (r *Repository) DeleteIssue(ctx context.Context, id issue.UUID) error {
	tag, err := r.db.Exec(ctx, DeleteIssueByID, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return issue.ErrNotFound
	}

	return nil
}
