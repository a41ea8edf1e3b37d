package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse/internal/models/request_models"
	"pulse/internal/models/response_models"
	"pulse/internal/services"
	"pulse/pkg/middleware"
	"pulse/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// Profile godoc
// @Summary Get own profile
// @Description Return the authenticated user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/profile [get]
func (u *UserController) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidToken.Error())
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "Profile fetched successfully")
}

// GetAllUsers godoc
// @Summary List users
// @Description Fetch all user accounts, paginated (admin only)
// @Tags Users
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/users [get]
func (u *UserController) GetAllUsers(c *gin.Context) {
	skip, limit := parseSkipLimit(c)

	users, err := u.userService.GetAllUsers(c.Request.Context(), skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponses(users), "Users fetched successfully")
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partially update a user's fields (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body request_models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/users/{id} [patch]
func (u *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrUserNotFound.Error())
		return
	}

	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	user, err := u.userService.UpdateUser(c.Request.Context(), uint(id), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "User updated successfully")
}
