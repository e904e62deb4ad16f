package issue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-issues-api/internal/domain/validation"
	"civic-issues-api/pkg/optional"
)

type fakeUsers struct {
	known map[uuid.UUID]bool
	err   error
	calls int
}

func (f *fakeUsers) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.known[id], nil
}

func ptr[T any](v T) *T { return &v }

func validFields(owner uuid.UUID) Fields {
	return Fields{
		Status:      StatusNew,
		Description: ptr("Broken street light"),
		ImageURL:    ptr("https://example.com/light.jpg"),
		Latitude:    ptr(46.78),
		Longitude:   ptr(6.64),
		Tags:        []string{"light", "night"},
		User:        owner.String(),
	}
}

func TestValidate(t *testing.T) {
	owner := uuid.New()
	users := &fakeUsers{known: map[uuid.UUID]bool{owner: true}}

	tests := []struct {
		name   string
		mutate func(f *Fields)
		wants  map[string]validation.Kind
	}{
		{
			name:   "valid",
			mutate: func(f *Fields) {},
		},
		{
			name: "valid with empty tags and no optional fields",
			mutate: func(f *Fields) {
				f.Tags = []string{}
				f.Description = nil
				f.ImageURL = nil
			},
		},
		{
			name: "range bounds are inclusive",
			mutate: func(f *Fields) {
				f.Latitude = ptr(90.0)
				f.Longitude = ptr(-180.0)
			},
		},
		{
			name: "missing required fields",
			mutate: func(f *Fields) {
				f.User = ""
				f.Latitude = nil
				f.Longitude = nil
				f.Tags = nil
			},
			wants: map[string]validation.Kind{
				"user":      validation.KindRequired,
				"latitude":  validation.KindRequired,
				"longitude": validation.KindRequired,
				"tags":      validation.KindRequired,
			},
		},
		{
			name: "out of bounds",
			mutate: func(f *Fields) {
				f.Status = "done"
				f.Description = ptr(strings.Repeat("d", 1001))
				f.ImageURL = ptr(strings.Repeat("u", 501))
				f.Latitude = ptr(-0.5)
				f.Longitude = ptr(180.5)
			},
			wants: map[string]validation.Kind{
				"status":      validation.KindEnum,
				"description": validation.KindMaxLength,
				"imageUrl":    validation.KindMaxLength,
				"latitude":    validation.KindMin,
				"longitude":   validation.KindMax,
			},
		},
		{
			name:   "malformed user reference",
			mutate: func(f *Fields) { f.User = "not-a-valid-id" },
			wants:  map[string]validation.Kind{"user": validation.KindResourceNotFound},
		},
		{
			name:   "unknown user",
			mutate: func(f *Fields) { f.User = uuid.NewString() },
			wants:  map[string]validation.Kind{"user": validation.KindResourceNotFound},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := validFields(owner)
			tt.mutate(&f)

			err := Validate(context.Background(), New(f, time.Now()), users)
			if len(tt.wants) == 0 {
				require.NoError(t, err)
				return
			}

			var verr *validation.Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Len(t, verr.Fields, len(tt.wants))
			for field, kind := range tt.wants {
				assert.True(t, verr.Has(field, kind), "%s should fail with %s", field, kind)
			}
		})
	}
}

func TestValidate_LookupError(t *testing.T) {
	owner := uuid.New()
	storeErr := errors.New("connection refused")
	users := &fakeUsers{err: storeErr}

	err := Validate(context.Background(), New(validFields(owner), time.Now()), users)

	require.ErrorIs(t, err, storeErr)
	var verr *validation.Error
	assert.False(t, errors.As(err, &verr))
}

func TestValidate_SkipsLookupForMalformedReference(t *testing.T) {
	users := &fakeUsers{}
	f := validFields(uuid.New())
	f.User = "12345"

	_ = Validate(context.Background(), New(f, time.Now()), users)

	assert.Zero(t, users.calls)
}

func TestNew_DefaultsStatus(t *testing.T) {
	f := validFields(uuid.New())
	f.Status = ""
	now := time.Now()

	i := New(f, now)

	assert.Equal(t, StatusNew, i.Status)
	assert.Equal(t, now, i.CreatedAt)
	assert.Nil(t, i.UpdatedAt)
}

func existingIssue(owner uuid.UUID) Issue {
	i := New(validFields(owner), time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	i.ID = uuid.New()
	i.Revision = 3
	return i
}

func TestApplyPartial_OnlyStatus(t *testing.T) {
	existing := existingIssue(uuid.New())
	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	got := ApplyPartial(existing, Patch{Status: optional.Of(StatusInProgress)}, now)

	assert.Equal(t, StatusInProgress, got.Status)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, now, *got.UpdatedAt)

	want := existing
	want.Status = StatusInProgress
	want.UpdatedAt = &now
	assert.Equal(t, want, got)
}

func TestApplyPartial_PresentNullAndEmpty(t *testing.T) {
	existing := existingIssue(uuid.New())

	got := ApplyPartial(existing, Patch{
		Description: optional.Null[string](),
		ImageURL:    optional.Of(""),
		Tags:        optional.Of([]string{}),
	}, time.Now())

	assert.Nil(t, got.Description)
	require.NotNil(t, got.ImageURL)
	assert.Empty(t, *got.ImageURL)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
	assert.Equal(t, existing.Latitude, got.Latitude)
	assert.Equal(t, existing.User, got.User)
}

func TestApplyFull_ClearsOmittedDescription(t *testing.T) {
	owner := uuid.New()
	existing := existingIssue(owner)
	require.NotNil(t, existing.Description)
	now := time.Now()

	got := ApplyFull(existing, Fields{
		Status:    StatusInProgress,
		User:      owner.String(),
		Latitude:  ptr(10.0),
		Longitude: ptr(10.0),
		Tags:      []string{},
	}, now)

	assert.Nil(t, got.Description)
	assert.Nil(t, got.ImageURL)
	assert.Equal(t, StatusInProgress, got.Status)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, existing.CreatedAt, got.CreatedAt)
	assert.Equal(t, &now, got.UpdatedAt)

	users := &fakeUsers{known: map[uuid.UUID]bool{owner: true}}
	assert.NoError(t, Validate(context.Background(), got, users))
}

func TestApplyFull_OmittedStatusIsNotDefaulted(t *testing.T) {
	owner := uuid.New()
	users := &fakeUsers{known: map[uuid.UUID]bool{owner: true}}
	f := validFields(owner)
	f.Status = ""

	got := ApplyFull(existingIssue(owner), f, time.Now())

	var verr *validation.Error
	require.True(t, errors.As(Validate(context.Background(), got, users), &verr))
	assert.True(t, verr.Has("status", validation.KindRequired))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortCreatedAt, k)

	k, err = ParseSortKey("latitude")
	require.NoError(t, err)
	assert.Equal(t, SortLatitude, k)

	_, err = ParseSortKey("name")
	assert.Error(t, err)
}
