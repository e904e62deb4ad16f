package issue

import (
	"context"
)

type Repository interface {
	FetchIssueByID(ctx context.Context, id UUID) (*Issue, error)
	FetchIssues(ctx context.Context, sort SortKey) (Issues, error)
	FetchIssuesByUser(ctx context.Context, userID UUID) (Issues, error)
	CreateIssue(ctx context.Context, i Issue) (*Issue, error)
	UpdateIssue(ctx context.Context, i Issue) (*Issue, error)
	DeleteIssue(ctx context.Context, id UUID) error
}
