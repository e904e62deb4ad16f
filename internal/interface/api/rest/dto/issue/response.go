package issue

import (
	"time"

	"github.com/google/uuid"
)

// UsersPath prefixes the userHref of every serialized issue.
const UsersPath = "/api/v1/users"

type (
	Issue struct {
		ID          uuid.UUID  `json:"id"`
		Status      string     `json:"status"`
		Description *string    `json:"description,omitempty"`
		ImageURL    *string    `json:"imageUrl,omitempty"`
		Latitude    *float64   `json:"latitude"`
		Longitude   *float64   `json:"longitude"`
		Tags        []string   `json:"tags"`
		User        string     `json:"user"`
		UserHref    string     `json:"userHref"`
		CreatedAt   time.Time  `json:"createdAt"`
		UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
		Revision    int        `json:"revision"`
	}
	Issues       []Issue
	ResponseData struct {
		Data Issues `json:"data"`
	}
)
