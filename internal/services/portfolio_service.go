package services

import (
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	// GetPublicPortfolio resolves a display-name slug (hyphens as spaces,
	// case-insensitive) to a student and returns their portfolio-flagged
	// projects. No authentication involved.
	GetPublicPortfolio(db *gorm.DB, usernameSlug string) (*dto.PublicPortfolio, error)
}

type portfolioService struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
}

func NewPortfolioService(userRepo repositories.UserRepository, projectRepo repositories.ProjectRepository) PortfolioService {
	return &portfolioService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

func (s *portfolioService) GetPublicPortfolio(db *gorm.DB, usernameSlug string) (*dto.PublicPortfolio, error) {
	user, err := s.userRepo.FindStudentByNameSlug(db, usernameSlug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	projects, err := s.projectRepo.FindPortfolioByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PublicPortfolio{
		Name:       user.Name,
		Bio:        user.Bio,
		Avatar:     user.Avatar,
		Skills:     user.Skills,
		University: user.University,
		Github:     user.Github,
		Linkedin:   user.Linkedin,
		SkillScore: user.SkillScore,
		Projects:   projects,
	}, nil
}
