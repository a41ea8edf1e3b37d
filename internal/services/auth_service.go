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

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *utils.TokenIssuer
}

func NewAuthService(userRepo repositories.UserRepository, tokens *utils.TokenIssuer) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user with the default role. Username and email
// are pre-checked for friendly errors, but the database unique indexes
// are the authority: a concurrent duplicate slipping past the checks
// comes back as ErrDuplicatedKey and is reported as a conflict too.
func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	existing, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	existing, err = a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: hashedPassword,
		Role:           db_models.RoleUser,
		IsActive:       true,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent signup won the race. Re-check which field
			// collided so the error names the right one.
			if taken, lookupErr := a.userRepo.FindByUsername(ctx, request.Username); lookupErr == nil && taken != nil {
				return nil, utils.ErrUsernameTaken
			}
			return nil, utils.ErrEmailTaken
		}
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown username
// and wrong password produce the same error so callers cannot enumerate
// accounts.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	if user == nil || utils.ComparePasswords(user.HashedPassword, request.Password) != nil {
		return "", utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", utils.ErrInactiveUser
	}

	token, err := a.tokens.CreateToken(user.Username, user.ID, user.Role)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	return token, nil
}
