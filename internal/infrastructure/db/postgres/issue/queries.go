package issue

import (
	domain "civic-issues-api/internal/domain/issue"
)

const (
	selectIssues = `
		SELECT id, status, description, image_url, latitude, longitude, tags, user_id, created_at, updated_at, revision
		FROM issues
	`
	SelectIssueByID = selectIssues + `WHERE id = $1`
	// issues of one user come back in store order
	SelectIssuesByUser = selectIssues + `WHERE user_id = $1`
	InsertIssue        = `
		INSERT INTO issues (status, description, image_url, latitude, longitude, tags, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, description, image_url, latitude, longitude, tags, user_id, created_at, updated_at, revision
	`
	UpdateIssueByID = `
		UPDATE issues
		SET status = $1,
		    description = $2,
		    image_url = $3,
		    latitude = $4,
		    longitude = $5,
		    tags = $6,
		    user_id = $7,
		    updated_at = $8,
		    revision = revision + 1
		WHERE id = $9
		RETURNING id, status, description, image_url, latitude, longitude, tags, user_id, created_at, updated_at, revision
	`
	DeleteIssueByID = `DELETE FROM issues WHERE id = $1`
)

var sortColumns = map[domain.SortKey]string{
	domain.SortCreatedAt: "created_at",
	domain.SortUpdatedAt: "updated_at",
	domain.SortStatus:    "status",
	domain.SortLatitude:  "latitude",
	domain.SortLongitude: "longitude",
}

// SelectIssuesSorted orders by a whitelisted column, ties broken by id.
func SelectIssuesSorted(key domain.SortKey) string {
	col, ok := sortColumns[key]
	if !ok {
		col = sortColumns[domain.DefaultSort]
	}
	return selectIssues + `ORDER BY ` + col + ` ASC, id ASC`
}
