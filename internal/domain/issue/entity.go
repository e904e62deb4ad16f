package issue

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"civic-issues-api/pkg/optional"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "inProgress"
	StatusCanceled   Status = "canceled"
	StatusCompleted  Status = "completed"
)

var Statuses = []string{
	string(StatusNew),
	string(StatusInProgress),
	string(StatusCanceled),
	string(StatusCompleted),
}

var (
	ErrNotFound = errors.New("issue not found")
	// ErrInvalidReference is returned when a user filter is not a store identifier.
	ErrInvalidReference = errors.New("invalid user reference")
)

type (
	UUID  = uuid.UUID
	Issue struct {
		ID          UUID
		Status      Status
		Description *string
		ImageURL    *string
		Latitude    *float64
		Longitude   *float64
		Tags        []string
		// User is the raw reference sent by the client; Validate checks it
		// is a UUID of an existing user.
		User      string
		CreatedAt time.Time
		UpdatedAt *time.Time
		Revision  int
	}
	Issues []*Issue

	// Fields is the mutable part of an issue as sent by clients.
	Fields struct {
		Status      Status
		Description *string
		ImageURL    *string
		Latitude    *float64
		Longitude   *float64
		Tags        []string
		User        string
	}

	Patch struct {
		Status      optional.Value[Status]
		Description optional.Value[string]
		ImageURL    optional.Value[string]
		Latitude    optional.Value[float64]
		Longitude   optional.Value[float64]
		Tags        optional.Value[[]string]
		User        optional.Value[string]
	}
)

// UserID returns the parsed owner reference.
func (i Issue) UserID() (UUID, bool) {
	id, err := uuid.Parse(i.User)
	return id, err == nil
}
