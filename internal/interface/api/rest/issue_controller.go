package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-issues-api/internal/application/ports"
	domain "civic-issues-api/internal/domain/issue"
	"civic-issues-api/internal/interface/api/rest/dto/issue"
	"civic-issues-api/internal/interface/api/rest/validator"
)

type IssueController struct {
	issueService ports.IssueService
	logger       *zap.Logger
}

func NewIssueController(
	r gin.IRouter,
	issueService ports.IssueService,
	logger *zap.Logger,
) *IssueController {
	ic := &IssueController{
		issueService: issueService,
		logger:       logger,
	}

	r.GET(RouteIssues, ic.GetIssuesHandler)
	r.GET(RouteUserIssues, ic.GetUserIssuesHandler)
	r.GET(RouteIssue, ic.GetIssueHandler)
	r.POST(RouteIssues, ic.CreateIssueHandler)
	r.PUT(RouteIssue, ic.ReplaceIssueHandler)
	r.PATCH(RouteIssue, ic.PatchIssueHandler)
	r.DELETE(RouteIssue, ic.DeleteIssueHandler)

	return ic
}

func (ic *IssueController) GetIssuesHandler(c *gin.Context) {
	sort, err := validator.ValidateSort(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issues, err := ic.issueService.FindIssues(c.Request.Context(), sort)
	if err != nil {
		respondError(c, ic.logger, "get issues", resourceIssue, "", err)
		return
	}

	c.JSON(http.StatusOK, issue.ResponseData{
		Data: issue.ToResponseIssues(issues),
	})
}

func (ic *IssueController) GetUserIssuesHandler(c *gin.Context) {
	id := c.Param("user_id")

	issues, err := ic.issueService.FindIssuesByUser(c.Request.Context(), id)
	if errors.Is(err, domain.ErrInvalidReference) {
		c.String(http.StatusOK, "No result found")
		return
	}
	if err != nil {
		respondError(c, ic.logger, "get issues of a user", resourceUser, id, err)
		return
	}

	c.JSON(http.StatusOK, issue.ResponseData{
		Data: issue.ToResponseIssues(issues),
	})
}

func (ic *IssueController) GetIssueHandler(c *gin.Context) {
	id := c.Param("issue_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceIssue, id)
		return
	}

	i, err := ic.issueService.FindIssueByID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, ic.logger, "get an issue", resourceIssue, id, err)
		return
	}

	c.JSON(http.StatusOK, issue.ToResponseIssue(*i))
}

func (ic *IssueController) CreateIssueHandler(c *gin.Context) {
	var req issue.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	i, err := ic.issueService.CreateIssue(c.Request.Context(), issue.ToDomainFields(req))
	if err != nil {
		respondError(c, ic.logger, "create an issue", resourceIssue, "", err)
		return
	}

	c.Header("Location", RouteIssues+"/"+i.ID.String())
	c.JSON(http.StatusCreated, issue.ToResponseIssue(*i))
}

func (ic *IssueController) ReplaceIssueHandler(c *gin.Context) {
	id := c.Param("issue_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceIssue, id)
		return
	}

	var req issue.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	i, err := ic.issueService.ReplaceIssue(c.Request.Context(), uuid, issue.ToDomainFields(req))
	if err != nil {
		respondError(c, ic.logger, "update an issue", resourceIssue, id, err)
		return
	}

	c.JSON(http.StatusOK, issue.ToResponseIssue(*i))
}

func (ic *IssueController) PatchIssueHandler(c *gin.Context) {
	id := c.Param("issue_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceIssue, id)
		return
	}

	var req issue.PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	i, err := ic.issueService.PatchIssue(c.Request.Context(), uuid, issue.ToDomainPatch(req))
	if err != nil {
		respondError(c, ic.logger, "update an issue", resourceIssue, id, err)
		return
	}

	c.JSON(http.StatusOK, issue.ToResponseIssue(*i))
}

func (ic *IssueController) DeleteIssueHandler(c *gin.Context) {
	id := c.Param("issue_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceIssue, id)
		return
	}

	if err := ic.issueService.DeleteIssue(c.Request.Context(), uuid); err != nil {
		respondError(c, ic.logger, "delete an issue", resourceIssue, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}
