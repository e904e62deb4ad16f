package issue

import "fmt"

type SortKey string

const (
	SortCreatedAt SortKey = "createdAt"
	SortUpdatedAt SortKey = "updatedAt"
	SortStatus    SortKey = "status"
	SortLatitude  SortKey = "latitude"
	SortLongitude SortKey = "longitude"

	DefaultSort = SortCreatedAt
)

var sortKeys = map[SortKey]struct{}{
	SortCreatedAt: {},
	SortUpdatedAt: {},
	SortStatus:    {},
	SortLatitude:  {},
	SortLongitude: {},
}

// ParseSortKey maps a query value to a SortKey; an empty value selects DefaultSort.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return DefaultSort, nil
	}
	k := SortKey(s)
	if _, ok := sortKeys[k]; !ok {
		return "", fmt.Errorf("unknown sort key %q", s)
	}
	return k, nil
}
