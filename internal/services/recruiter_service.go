package services

import (
	"context"
	"encoding/json"
	"math"

	"skillpilot_backend/internal/ai"
	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecruiterService interface {
	BrowseStudents(db *gorm.DB, query *dto.BrowseStudentsQuery) (*dto.StudentListResult, error)
	GetStudentProfile(db *gorm.DB, studentID string) (*dto.StudentProfileResult, error)

	// GenerateSkillScore evaluates a student's project history on demand
	// and persists the resulting score on the student record.
	GenerateSkillScore(ctx context.Context, db *gorm.DB, studentID string) (*ai.SkillScoreData, error)
}

type recruiterService struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	aiProvider  ai.Provider
}

func NewRecruiterService(userRepo repositories.UserRepository, projectRepo repositories.ProjectRepository, aiProvider ai.Provider) RecruiterService {
	return &recruiterService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		aiProvider:  aiProvider,
	}
}

func (s *recruiterService) BrowseStudents(db *gorm.DB, query *dto.BrowseStudentsQuery) (*dto.StudentListResult, error) {
	page := query.Page
	if page <= 0 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	students, total, err := s.userRepo.FindStudents(db, query.Search, page, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StudentListResult{
		Students: students,
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *recruiterService) GetStudentProfile(db *gorm.DB, studentID string) (*dto.StudentProfileResult, error) {
	student, err := s.userRepo.FindStudentByID(db, studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	projects, err := s.projectRepo.FindByUser(db, studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StudentProfileResult{Student: student, Projects: projects}, nil
}

func (s *recruiterService) GenerateSkillScore(ctx context.Context, db *gorm.DB, studentID string) (*ai.SkillScoreData, error) {
	student, err := s.userRepo.FindStudentByID(db, studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	projects, err := s.projectRepo.FindByUser(db, studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]ai.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ai.ProjectSummary{
			Title:      p.Title,
			TechStack:  p.TechStack,
			Progress:   p.Progress,
			Difficulty: string(p.Difficulty),
		})
	}

	scoreData, err := s.aiProvider.GenerateSkillScore(ctx, student.Name, summaries)
	if err != nil {
		logger.CtxWithError(ctx, "skill score generation failed", err, "student_id", studentID)
		return nil, apperrors.ExternalServiceError(err)
	}

	student.SkillScore = scoreData.Score
	if raw, err := json.Marshal(scoreData); err == nil {
		student.SkillScoreDetail = datatypes.JSON(raw)
	}
	if err := s.userRepo.Update(db, student); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return scoreData, nil
}
