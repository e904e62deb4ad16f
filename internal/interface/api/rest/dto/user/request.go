package user

import (
	"civic-issues-api/pkg/optional"
)

type (
	Request struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		Role      string `json:"role"`
	}
	PatchRequest struct {
		Firstname optional.Value[string] `json:"firstname"`
		Lastname  optional.Value[string] `json:"lastname"`
		Role      optional.Value[string] `json:"role"`
	}
)
