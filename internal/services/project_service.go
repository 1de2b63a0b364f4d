package services

import (
	"context"
	"strconv"
	"time"

	"skillpilot_backend/internal/ai"
	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/models"
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	// Generate asks the AI gateway for a new project and persists it with
	// all tasks in the todo column. Nothing is saved when the call fails.
	Generate(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateProjectRequest) (*models.Project, error)

	List(db *gorm.DB, userID string) ([]models.Project, error)
	GetActive(db *gorm.DB, userID string) (*models.Project, error)
	GetByID(db *gorm.DB, userID, projectID string) (*models.Project, error)

	// UpdateStatus is the manual status override. It bypasses the
	// auto-completion rule on purpose: it can reopen or archive a
	// project regardless of progress.
	UpdateStatus(db *gorm.DB, userID, projectID string, status models.ProjectStatus) (*models.Project, error)

	// GeneratePortfolio populates the portfolio fields via the AI gateway.
	GeneratePortfolio(ctx context.Context, db *gorm.DB, userID, projectID string) (*models.Project, *ai.PortfolioData, error)

	// GetPublicProjects lists the portfolio-flagged projects of any user.
	GetPublicProjects(db *gorm.DB, userID string) ([]models.Project, error)
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	aiProvider  ai.Provider
}

func NewProjectService(projectRepo repositories.ProjectRepository, aiProvider ai.Provider) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		aiProvider:  aiProvider,
	}
}

func (s *projectService) Generate(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateProjectRequest) (*models.Project, error) {
	generated, err := s.aiProvider.GenerateProject(ctx, req.Interests, req.PreferredStack)
	if err != nil {
		logger.CtxWithError(ctx, "project generation failed", err)
		return nil, apperrors.ExternalServiceError(err)
	}

	deadlineDays, err := strconv.Atoi(generated.SuggestedDeadline)
	if err != nil || deadlineDays <= 0 {
		deadlineDays = 14
	}
	deadline := time.Now().AddDate(0, 0, deadlineDays)

	project := &models.Project{
		UserID:            userID,
		Title:             generated.Title,
		Description:       generated.Description,
		Difficulty:        models.ProjectDifficulty(generated.Difficulty),
		TechStack:         generated.TechStack,
		Status:            models.ProjectStatusActive,
		SuggestedDeadline: &deadline,
	}
	for i, t := range generated.Tasks {
		project.Tasks = append(project.Tasks, models.Task{
			Title:       t.Title,
			Description: t.Description,
			Status:      models.TaskStatusTodo,
			Order:       i,
		})
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "project generated", "project_id", project.ID, "tasks", len(project.Tasks))
	return project, nil
}

func (s *projectService) List(db *gorm.DB, userID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *projectService) GetActive(db *gorm.DB, userID string) (*models.Project, error) {
	project, err := s.projectRepo.FindActiveByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			// No active project is a normal state, not an error
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) GetByID(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	return s.findOwned(db, userID, projectID)
}

func (s *projectService) UpdateStatus(db *gorm.DB, userID, projectID string, status models.ProjectStatus) (*models.Project, error) {
	project, err := s.findOwned(db, userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Status = status
	if status == models.ProjectStatusCompleted && project.CompletedAt == nil {
		now := time.Now()
		project.CompletedAt = &now
	}

	if err := s.projectRepo.Save(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) GeneratePortfolio(ctx context.Context, db *gorm.DB, userID, projectID string) (*models.Project, *ai.PortfolioData, error) {
	project, err := s.findOwned(db, userID, projectID)
	if err != nil {
		return nil, nil, err
	}

	done := 0
	for _, t := range project.Tasks {
		if t.Status == models.TaskStatusDone {
			done++
		}
	}

	data, err := s.aiProvider.GeneratePortfolio(ctx, ai.ProjectContext{
		Title:       project.Title,
		Description: project.Description,
		TechStack:   project.TechStack,
	}, done, len(project.Tasks))
	if err != nil {
		logger.CtxWithError(ctx, "portfolio generation failed", err, "project_id", projectID)
		return nil, nil, apperrors.ExternalServiceError(err)
	}

	project.PortfolioGenerated = true
	project.PortfolioSummary = data.Summary
	project.SkillsLearned = data.SkillsLearned
	project.ResumeBullets = data.ResumeBullets

	if err := s.projectRepo.Save(db, project); err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return project, data, nil
}

func (s *projectService) GetPublicProjects(db *gorm.DB, userID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindPortfolioByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

// findOwned conflates "does not exist" and "not yours" into one NotFound
// so non-owners cannot probe for project existence.
func (s *projectService) findOwned(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(db, projectID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}
