package response_models

import (
	"time"

	"pulse/internal/models/db_models"
)

type FeedbackResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeedbackResponse(feedback *db_models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}
}

// FeedbackWithUser is a feedback row joined with the submitting user's
// username for the admin listing.
type FeedbackWithUser struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

type FeedbackSummary struct {
	TotalFeedback int64   `json:"total_feedback"`
	AverageRating float64 `json:"average_rating"`
}
