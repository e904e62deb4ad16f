package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-issues-api/internal/domain/issue"
	"civic-issues-api/internal/domain/user"
	"civic-issues-api/internal/domain/validation"
)

const (
	resourceUser  = "user"
	resourceIssue = "issue"
)

func notFound(c *gin.Context, resource, id string) {
	c.String(http.StatusNotFound, "No %s found with ID %s", resource, id)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": err.Error(),
	})
}

// respondError maps a service error onto the HTTP surface. Anything it does
// not recognise is logged and answered with 500.
func respondError(c *gin.Context, logger *zap.Logger, op, resource, id string, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": verr.Fields,
		})
	case errors.Is(err, user.ErrNotFound), errors.Is(err, issue.ErrNotFound):
		notFound(c, resource, id)
	case errors.Is(err, user.ErrDuplicateName):
		c.JSON(http.StatusConflict, gin.H{"error": user.ErrDuplicateName.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": fmt.Sprintf("failed to %s", op)},
		)
		logger.Error(op+" error", zap.String("id", id), zap.Error(err))
	}
}
