package services

import (
	"strings"

	"skillpilot_backend/internal/auth"
	"skillpilot_backend/internal/models"
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResult, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResult, error)

	// Refresh exchanges a valid, currently-stored refresh token for a new
	// token pair. A superseded token fails even with a valid signature.
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResult, error)

	// Logout clears the stored refresh token slot.
	Logout(db *gorm.DB, userID string) error

	Me(db *gorm.DB, userID string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResult, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := auth.ValidateRole(req.Role); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashed,
		Role:         models.UserRole(req.Role),
		Skills:       []string{},
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewBadRequestError("Email already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueSession(db, user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same message as the wrong-password path: the error must not
			// reveal whether the email is registered.
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	return s.issueSession(db, user)
}

func (s *authService) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResult, error) {
	claims, err := auth.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(db, claims.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	// The signature check above is stateless; this comparison against the
	// stored slot is what revokes superseded tokens.
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	return s.issueSession(db, user)
}

func (s *authService) Logout(db *gorm.DB, userID string) error {
	if err := s.userRepo.SetRefreshToken(db, userID, nil); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewUnauthorizedError("Invalid user")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) Me(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// issueSession mints a fresh token pair and overwrites the stored refresh
// token, invalidating any previously issued one.
func (s *authService) issueSession(db *gorm.DB, user *models.User) (*dto.AuthResult, error) {
	accessToken, err := auth.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.GenerateRefreshToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetRefreshToken(db, user.ID, &refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.RefreshToken = &refreshToken

	return &dto.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
