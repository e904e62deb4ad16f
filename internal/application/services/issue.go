package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"civic-issues-api/internal/application/ports"
	domain "civic-issues-api/internal/domain/issue"
	"civic-issues-api/internal/infrastructure/mq"
	"civic-issues-api/internal/interface/api/rest/dto/issue"
)

type IssueService struct {
	issueRepository domain.Repository
	users           domain.UserChecker
	events          ports.EventPublisher
	mCounter        *prometheus.CounterVec
	log             *zap.Logger
	now             func() time.Time
}

func NewIssueService(
	issueRepository domain.Repository,
	users domain.UserChecker,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.IssueService {
	return &IssueService{
		issueRepository: issueRepository,
		users:           users,
		events:          events,
		mCounter:        mCounter,
		log:             logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (is *IssueService) FindIssueByID(ctx context.Context, id domain.UUID) (*domain.Issue, error) {
	i, err := is.issueRepository.FetchIssueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch issue %s: %w", id, err)
	}

	return i, nil
}

func (is *IssueService) FindIssues(ctx context.Context, sort domain.SortKey) (domain.Issues, error) {
	issues, err := is.issueRepository.FetchIssues(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("fetch issues by %s: %w", sort, err)
	}

	return issues, nil
}

func (is *IssueService) FindIssuesByUser(ctx context.Context, userID string) (domain.Issues, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", userID, domain.ErrInvalidReference)
	}

	issues, err := is.issueRepository.FetchIssuesByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("fetch issues of user %s: %w", uid, err)
	}

	return issues, nil
}

func (is *IssueService) CreateIssue(ctx context.Context, f domain.Fields) (*domain.Issue, error) {
	i := domain.New(f, is.now())
	if err := domain.Validate(ctx, i, is.users); err != nil {
		return nil, err
	}

	iRet, err := is.issueRepository.CreateIssue(ctx, i)
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	is.publish(ctx, mq.ActionCreated, iRet.ID.String(), issue.ToResponseIssue(*iRet))
	is.mCounter.WithLabelValues("issue_created_total").Inc()

	return iRet, nil
}

func (is *IssueService) ReplaceIssue(ctx context.Context, id domain.UUID, f domain.Fields) (*domain.Issue, error) {
	existing, err := is.FindIssueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return is.update(ctx, domain.ApplyFull(*existing, f, is.now()))
}

func (is *IssueService) PatchIssue(ctx context.Context, id domain.UUID, p domain.Patch) (*domain.Issue, error) {
	existing, err := is.FindIssueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return is.update(ctx, domain.ApplyPartial(*existing, p, is.now()))
}

func (is *IssueService) update(ctx context.Context, i domain.Issue) (*domain.Issue, error) {
	if err := domain.Validate(ctx, i, is.users); err != nil {
		return nil, err
	}

	iRet, err := is.issueRepository.UpdateIssue(ctx, i)
	if err != nil {
		return nil, fmt.Errorf("update issue %s: %w", i.ID, err)
	}

	is.publish(ctx, mq.ActionUpdated, iRet.ID.String(), issue.ToResponseIssue(*iRet))
	is.mCounter.WithLabelValues("issue_updated_total").Inc()

	return iRet, nil
}

func (is *IssueService) DeleteIssue(ctx context.Context, id domain.UUID) error {
	if err := is.issueRepository.DeleteIssue(ctx, id); err != nil {
		return fmt.Errorf("delete issue %s: %w", id, err)
	}

	is.publish(ctx, mq.ActionDeleted, id.String(), nil)
	is.mCounter.WithLabelValues("issue_deleted_total").Inc()

	return nil
}

func (is *IssueService) publish(ctx context.Context, action mq.Action, id string, payload any) {
	e := mq.NewEvent(mq.ResourceIssue, action, id, payload)
	if err := is.events.Publish(ctx, e); err != nil {
		is.log.Warn("issue event dropped", zap.String("routing_key", e.RoutingKey()), zap.Error(err))
	}
}
