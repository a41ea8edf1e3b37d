package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulse/internal/models/request_models"
	"pulse/internal/models/response_models"
	"pulse/internal/services"
	"pulse/pkg/utils"
)

type RoleController struct {
	userService services.UserServiceInterface
}

func NewRoleController(userService services.UserServiceInterface) *RoleController {
	return &RoleController{userService: userService}
}

// UpdateRole godoc
// @Summary Update a user's role
// @Description Set a user's role to 'user' or 'admin' (admin only)
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body request_models.UpdateRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/roles/{id} [patch]
func (r *RoleController) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, utils.ErrUserNotFound.Error())
		return
	}

	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	user, err := r.userService.UpdateRole(c.Request.Context(), uint(id), req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "Role updated successfully")
}
