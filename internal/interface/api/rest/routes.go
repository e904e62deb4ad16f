package rest

import (
	"civic-issues-api/internal/interface/api/rest/dto/issue"
)

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUsers = issue.UsersPath
	RouteUser  = RouteUsers + "/:user_id"

	RouteIssues     = RouteApiV1 + "/issues"
	RouteIssue      = RouteIssues + "/:issue_id"
	RouteUserIssues = RouteIssues + "/user/:user_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
