package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-issues-api/internal/application/ports"
	"civic-issues-api/internal/interface/api/rest/dto/user"
	"civic-issues-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r gin.IRouter,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PUT(RouteUser, uc.ReplaceUserHandler)
	r.PATCH(RouteUser, uc.PatchUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		respondError(c, uc.logger, "get users", resourceUser, "", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id := c.Param("user_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceUser, id)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), uuid)
	if err != nil {
		respondError(c, uc.logger, "get a user", resourceUser, id, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainFields(req))
	if err != nil {
		respondError(c, uc.logger, "create a user", resourceUser, "", err)
		return
	}

	c.Header("Location", RouteUsers+"/"+u.ID.String())
	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) ReplaceUserHandler(c *gin.Context) {
	id := c.Param("user_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceUser, id)
		return
	}

	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := uc.userService.ReplaceUser(c.Request.Context(), uuid, user.ToDomainFields(req))
	if err != nil {
		respondError(c, uc.logger, "update a user", resourceUser, id, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) PatchUserHandler(c *gin.Context) {
	id := c.Param("user_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceUser, id)
		return
	}

	var req user.PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := uc.userService.PatchUser(c.Request.Context(), uuid, user.ToDomainPatch(req))
	if err != nil {
		respondError(c, uc.logger, "update a user", resourceUser, id, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// DeleteUserHandler leaves the user's issues in place.
func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id := c.Param("user_id")
	ok, uuid := validator.IsUUID(id)
	if !ok {
		notFound(c, resourceUser, id)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), uuid); err != nil {
		respondError(c, uc.logger, "delete a user", resourceUser, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}
