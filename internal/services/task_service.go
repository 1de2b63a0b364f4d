package services

import (
	"time"

	"skillpilot_backend/internal/models"
	"skillpilot_backend/internal/repositories"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TaskService interface {
	// SetTaskStatus moves one task to a new status column, recomputes the
	// project progress and applies the auto-completion rule.
	SetTaskStatus(db *gorm.DB, userID, projectID, taskID string, status models.TaskStatus) (*models.Project, error)

	// Reorder applies a batch of board moves. Updates referencing unknown
	// task ids are skipped silently; within the batch the last entry for a
	// task id wins. Progress is recomputed once after all updates.
	Reorder(db *gorm.DB, userID, projectID string, updates []dto.TaskReorderUpdate) (*models.Project, error)
}

type taskService struct {
	projectRepo repositories.ProjectRepository
}

func NewTaskService(projectRepo repositories.ProjectRepository) TaskService {
	return &taskService{projectRepo: projectRepo}
}

func (s *taskService) SetTaskStatus(db *gorm.DB, userID, projectID, taskID string, status models.TaskStatus) (*models.Project, error) {
	project, err := s.findOwned(db, userID, projectID)
	if err != nil {
		return nil, err
	}

	var task *models.Task
	for i := range project.Tasks {
		if project.Tasks[i].ID == taskID {
			task = &project.Tasks[i]
			break
		}
	}
	if task == nil {
		return nil, apperrors.NewNotFoundError("Task not found")
	}

	// Any status may move to any other; the board has no transition rules
	task.Status = status
	project.RefreshProgress(time.Now())

	if err := s.projectRepo.SaveWithTasks(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *taskService) Reorder(db *gorm.DB, userID, projectID string, updates []dto.TaskReorderUpdate) (*models.Project, error) {
	project, err := s.findOwned(db, userID, projectID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Task, len(project.Tasks))
	for i := range project.Tasks {
		byID[project.Tasks[i].ID] = &project.Tasks[i]
	}

	for _, update := range updates {
		task, ok := byID[update.TaskID]
		if !ok {
			continue
		}
		task.Status = models.TaskStatus(update.Status)
		task.Order = update.Order
	}

	project.RefreshProgress(time.Now())

	if err := s.projectRepo.SaveWithTasks(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *taskService) findOwned(db *gorm.DB, userID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(db, projectID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}
