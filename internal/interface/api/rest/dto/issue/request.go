package issue

import (
	"civic-issues-api/pkg/optional"
)

type (
	// Request is the body of create and full replace; a missing key decodes
	// to nil.
	Request struct {
		Status      *string  `json:"status"`
		Description *string  `json:"description"`
		ImageURL    *string  `json:"imageUrl"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		Tags        []string `json:"tags"`
		User        *string  `json:"user"`
	}
	PatchRequest struct {
		Status      optional.Value[string]   `json:"status"`
		Description optional.Value[string]   `json:"description"`
		ImageURL    optional.Value[string]   `json:"imageUrl"`
		Latitude    optional.Value[float64]  `json:"latitude"`
		Longitude   optional.Value[float64]  `json:"longitude"`
		Tags        optional.Value[[]string] `json:"tags"`
		User        optional.Value[string]   `json:"user"`
	}
)
