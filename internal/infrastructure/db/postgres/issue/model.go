package issue

import (
	"time"

	"github.com/google/uuid"
)

type (
	Issue struct {
		ID          uuid.UUID
		Status      string
		Description *string
		ImageURL    *string
		Latitude    float64
		Longitude   float64
		Tags        []string
		UserID      uuid.UUID
		CreatedAt   time.Time
		UpdatedAt   *time.Time
		Revision    int
	}
	Issues []*Issue
)
