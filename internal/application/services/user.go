package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"civic-issues-api/internal/application/ports"
	domain "civic-issues-api/internal/domain/user"
	"civic-issues-api/internal/infrastructure/mq"
	"civic-issues-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
	log            *zap.Logger
	now            func() time.Time
}

func NewUserService(
	userRepository domain.Repository,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		events:         events,
		mCounter:       mCounter,
		log:            logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", uuid, err)
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return users, nil
}

func (us *UserService) CreateUser(ctx context.Context, f domain.Fields) (*domain.User, error) {
	u := domain.New(f, us.now())
	if err := domain.Validate(u); err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.publish(ctx, mq.ActionCreated, uRet.ID.String(), user.ToResponseUser(*uRet))
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) ReplaceUser(ctx context.Context, uuid domain.UUID, f domain.Fields) (*domain.User, error) {
	existing, err := us.FindUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return us.update(ctx, domain.ApplyFull(*existing, f))
}

func (us *UserService) PatchUser(ctx context.Context, uuid domain.UUID, p domain.Patch) (*domain.User, error) {
	existing, err := us.FindUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return us.update(ctx, domain.ApplyPartial(*existing, p))
}

func (us *UserService) update(ctx context.Context, u domain.User) (*domain.User, error) {
	if err := domain.Validate(u); err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", u.ID, err)
	}

	us.publish(ctx, mq.ActionUpdated, uRet.ID.String(), user.ToResponseUser(*uRet))
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

// DeleteUser removes the user only; issues that reference it are kept.
func (us *UserService) DeleteUser(ctx context.Context, uuid domain.UUID) error {
	if err := us.userRepository.DeleteUser(ctx, uuid); err != nil {
		return fmt.Errorf("delete user %s: %w", uuid, err)
	}

	us.publish(ctx, mq.ActionDeleted, uuid.String(), nil)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) publish(ctx context.Context, action mq.Action, id string, payload any) {
	e := mq.NewEvent(mq.ResourceUser, action, id, payload)
	if err := us.events.Publish(ctx, e); err != nil {
		us.log.Warn("user event dropped", zap.String("routing_key", e.RoutingKey()), zap.Error(err))
	}
}
