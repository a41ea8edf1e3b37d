package services

import (
	"context"
	"math"

	"pulse/internal/models/db_models"
	"pulse/internal/models/response_models"
	"pulse/internal/repositories"
	"pulse/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, userID uint, rating int, comment *string) (*db_models.Feedback, error)
	GetFeedback(ctx context.Context, skip, limit int) ([]response_models.FeedbackWithUser, error)
	GetSummary(ctx context.Context) (*response_models.FeedbackSummary, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// AddFeedback persists a rating event. The rating is already range-checked
// at the request boundary; the database check constraint backs that up.
func (s *FeedbackService) AddFeedback(ctx context.Context, userID uint, rating int, comment *string) (*db_models.Feedback, error) {
	feedback := &db_models.Feedback{
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return feedback, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, skip, limit int) ([]response_models.FeedbackWithUser, error) {
	rows, err := s.feedbackRepo.ListFeedback(ctx, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rows, nil
}

// GetSummary returns total count and the average rating rounded to two
// decimals, 0.0 when no feedback exists.
func (s *FeedbackService) GetSummary(ctx context.Context) (*response_models.FeedbackSummary, error) {
	total, average, err := s.feedbackRepo.Summary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.FeedbackSummary{
		TotalFeedback: total,
		AverageRating: math.Round(average*100) / 100,
	}, nil
}
