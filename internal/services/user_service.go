package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pulse/internal/models/db_models"
	"pulse/internal/models/request_models"
	"pulse/internal/repositories"
	"pulse/pkg/utils"
)

type UserServiceInterface interface {
	GetAllUsers(ctx context.Context, skip, limit int) ([]db_models.User, error)
	UpdateUser(ctx context.Context, id uint, request request_models.UpdateUserRequest) (*db_models.User, error)
	UpdateRole(ctx context.Context, id uint, role string) (*db_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetAllUsers(ctx context.Context, skip, limit int) ([]db_models.User, error) {
	users, err := s.userRepo.ListAll(ctx, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

// UpdateUser applies a partial update. A role in the payload is validated
// the same way the dedicated role endpoint validates it, and unique-index
// violations on username/email surface as conflicts.
func (s *UserService) UpdateUser(ctx context.Context, id uint, request request_models.UpdateUserRequest) (*db_models.User, error) {
	if request.Role != nil && !db_models.ValidRole(*request.Role) {
		return nil, utils.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Username != nil {
		user.Username = *request.Username
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.Role != nil {
		user.Role = *request.Role
	}
	if request.IsActive != nil {
		user.IsActive = *request.IsActive
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateUser
		}
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, role string) (*db_models.User, error) {
	if !db_models.ValidRole(role) {
		return nil, utils.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	user.Role = role
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}
