package validator

import (
	"fmt"

	"github.com/google/uuid"

	"civic-issues-api/internal/domain/issue"
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidateSort reads the ?sort= query value; empty means the default order.
func ValidateSort(s string) (issue.SortKey, error) {
	key, err := issue.ParseSortKey(s)
	if err != nil {
		return "", fmt.Errorf("invalid sort: %w", err)
	}
	return key, nil
}
