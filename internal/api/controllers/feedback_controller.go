package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulse/internal/models/request_models"
	"pulse/internal/models/response_models"
	"pulse/internal/services"
	"pulse/pkg/middleware"
	"pulse/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Submit feedback
// @Description Submit a rating with an optional comment
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Rating must be an integer between 1 and 5")
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidToken.Error())
		return
	}

	feedback, err := f.feedbackService.AddFeedback(c.Request.Context(), user.ID, req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewFeedbackResponse(feedback), "Feedback added successfully")
}

// ListFeedback godoc
// @Summary List all feedback
// @Description Get all feedback with usernames, paginated (admin only)
// @Tags Feedback
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	skip, limit := parseSkipLimit(c)

	rows, err := f.feedbackService.GetFeedback(c.Request.Context(), skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Feedback fetched successfully")
}

// Summary godoc
// @Summary Feedback summary
// @Description Get total feedback count and average rating
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback/summary [get]
func (f *FeedbackController) Summary(c *gin.Context) {
	summary, err := f.feedbackService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Summary fetched successfully")
}
