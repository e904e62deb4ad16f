package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"civic-issues-api/internal/domain/user"
	"civic-issues-api/internal/domain/validation"
	"civic-issues-api/pkg/optional"
)

func newUserService(repo user.Repository, pub *recordingPublisher) *UserService {
	return NewUserService(repo, pub, newCounter(), zap.NewNop()).(*UserService)
}

func TestUserService_CreateThenFind(t *testing.T) {
	repo, pub := newMemUsers(), &recordingPublisher{}
	svc := newUserService(repo, pub)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.Fields{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	assert.Equal(t, []string{"user.created"}, pub.keys())
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.mCounter.WithLabelValues("user_created_total")))
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	repo, pub := newMemUsers(), &recordingPublisher{}
	svc := newUserService(repo, pub)

	_, err := svc.CreateUser(context.Background(), user.Fields{Firstname: "A"})

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("firstname", validation.KindMinLength))
	assert.True(t, verr.Has("lastname", validation.KindRequired))
	assert.True(t, verr.Has("role", validation.KindRequired))
	assert.Empty(t, repo.byID)
	assert.Empty(t, pub.keys())
}

func TestUserService_CreateUser_DuplicateName(t *testing.T) {
	svc := newUserService(newMemUsers(), &recordingPublisher{})
	ctx := context.Background()
	f := user.Fields{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen}

	_, err := svc.CreateUser(ctx, f)
	require.NoError(t, err)

	f.Role = user.RoleManager
	_, err = svc.CreateUser(ctx, f)
	require.ErrorIs(t, err, user.ErrDuplicateName)
}

func TestUserService_PatchUser(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newUserService(newMemUsers(), pub)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.Fields{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen})
	require.NoError(t, err)

	got, err := svc.PatchUser(ctx, created.ID, user.Patch{Role: optional.Of(user.RoleManager)})
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, got.Role)
	assert.Equal(t, "Ada", got.Firstname)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, 1, got.Revision)

	_, err = svc.PatchUser(ctx, created.ID, user.Patch{Firstname: optional.Null[string]()})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("firstname", validation.KindRequired))

	assert.Equal(t, []string{"user.created", "user.updated"}, pub.keys())
}

func TestUserService_ReplaceUser(t *testing.T) {
	svc := newUserService(newMemUsers(), &recordingPublisher{})
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.Fields{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen})
	require.NoError(t, err)

	_, err = svc.ReplaceUser(ctx, created.ID, user.Fields{Firstname: "Ada", Lastname: "King"})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "omitted role must be cleared then rejected")
	assert.True(t, verr.Has("role", validation.KindRequired))

	got, err := svc.ReplaceUser(ctx, created.ID, user.Fields{Firstname: "Ada", Lastname: "King", Role: user.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, "King", got.Lastname)

	_, err = svc.ReplaceUser(ctx, uuid.New(), user.Fields{Firstname: "Ada", Lastname: "King", Role: user.RoleManager})
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserService_DeleteTwice(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newUserService(newMemUsers(), pub)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.Fields{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))
	require.ErrorIs(t, svc.DeleteUser(ctx, created.ID), user.ErrNotFound)

	_, err = svc.FindUserByID(ctx, created.ID)
	require.ErrorIs(t, err, user.ErrNotFound)
	assert.Equal(t, []string{"user.created", "user.deleted"}, pub.keys())
}

func TestUserService_PublishFailureDoesNotFailWrite(t *testing.T) {
	svc := newUserService(newMemUsers(), &recordingPublisher{err: context.Canceled})

	_, err := svc.CreateUser(context.Background(), user.Fields{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen})
	assert.NoError(t, err)
}

func TestUserService_StoreError(t *testing.T) {
	repo := newMemUsers()
	repo.err = errStore
	svc := newUserService(repo, &recordingPublisher{})

	_, err := svc.FindUserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, errStore)
	assert.False(t, errors.Is(err, user.ErrNotFound))
}
