package service

import (
	"context"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	apperrors "github.com/VISHALLkandharee/Room-Finder/internal/pkg/errors"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/utils"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterResult represents registration result
type RegisterResult struct {
	User      *model.User
	TokenPair *utils.TokenPair
}

// Register registers a new user. New accounts are viewers; listing
// requires upgrading via BecomeLister.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*RegisterResult, error) {
	v := utils.NewValidator()
	v.ValidateUsername("username", input.Username)
	v.ValidateEmail("email", input.Email)
	v.ValidatePassword("password", input.Password)
	if v.HasErrors() {
		return nil, apperrors.ErrValidation.WithDetails(v.Errors())
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Error("Failed to check username", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &RegisterResult{
		User:      user,
		TokenPair: tokenPair,
	}, nil
}

// LoginInput represents login input
type LoginInput struct {
	Username string
	Password string
}

// LoginResult represents login result
type LoginResult struct {
	User      *model.User
	TokenPair *utils.TokenPair
}

// Login authenticates a user
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrInvalidPassword
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &LoginResult{
		User:      user,
		TokenPair: tokenPair,
	}, nil
}

// RefreshToken refreshes an access token. The lister flag is re-read
// from the database so a role change takes effect on the next refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		if err == utils.ErrExpiredToken {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return tokenPair, nil
}

// BecomeLister upgrades the caller to a lister account. The new role is
// reflected in tokens issued from the next login or refresh.
func (s *AuthService) BecomeLister(ctx context.Context, identity model.Identity) (*utils.TokenPair, error) {
	if identity.IsAnonymous() {
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.userRepo.SetAdmin(ctx, identity.UserID, true); err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error("Failed to set lister role", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("Failed to get user after role change", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username, true)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("User became a lister", zap.String("user_id", identity.UserID))

	return tokenPair, nil
}

// GetProfile retrieves a user's public profile
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return user.ToProfile(), nil
}
