package ports

import (
	"context"

	"civic-issues-api/internal/domain/issue"
)

type IssueService interface {
	FindIssueByID(ctx context.Context, uuid issue.UUID) (*issue.Issue, error)
	FindIssues(ctx context.Context, sort issue.SortKey) (issue.Issues, error)
	// FindIssuesByUser returns issue.ErrInvalidReference when userID is not
	// a well-formed identifier.
	FindIssuesByUser(ctx context.Context, userID string) (issue.Issues, error)
	CreateIssue(ctx context.Context, f issue.Fields) (*issue.Issue, error)
	ReplaceIssue(ctx context.Context, uuid issue.UUID, f issue.Fields) (*issue.Issue, error)
	PatchIssue(ctx context.Context, uuid issue.UUID, p issue.Patch) (*issue.Issue, error)
	DeleteIssue(ctx context.Context, uuid issue.UUID) error
}
