package repositories

import (
	"context"

	"gorm.io/gorm"

	"pulse/internal/models/db_models"
	"pulse/internal/models/response_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListFeedback(ctx context.Context, skip, limit int) ([]response_models.FeedbackWithUser, error)
	Summary(ctx context.Context) (int64, float64, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// ListFeedback returns feedback joined with the submitting user's
// username, oldest first with id as tiebreak so pagination is stable.
func (r *FeedbackRepository) ListFeedback(ctx context.Context, skip, limit int) ([]response_models.FeedbackWithUser, error) {
	var rows []response_models.FeedbackWithUser
	err := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Select("feedbacks.id, feedbacks.user_id, feedbacks.rating, feedbacks.comment, feedbacks.created_at, users.username").
		Joins("JOIN users ON users.id = feedbacks.user_id").
		Order("feedbacks.created_at ASC, feedbacks.id ASC").
		Offset(skip).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Summary computes row count and raw average rating in one query. The
// average is zero, not NULL, when there are no rows.
func (r *FeedbackRepository) Summary(ctx context.Context) (int64, float64, error) {
	var result struct {
		Total   int64
		Average float64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Select("COUNT(id) AS total, COALESCE(AVG(rating), 0) AS average").
		Scan(&result).Error
	return result.Total, result.Average, err
}
