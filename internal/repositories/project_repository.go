package repositories

import (
	"errors"

	"skillpilot_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error

	// FindOwned loads a project with its tasks only when it belongs to
	// the given user. A miss on either condition reports not-found.
	FindOwned(db *gorm.DB, projectID, userID string) (*models.Project, error)

	FindByUser(db *gorm.DB, userID string) ([]models.Project, error)
	FindActiveByUser(db *gorm.DB, userID string) (*models.Project, error)
	FindPortfolioByUser(db *gorm.DB, userID string) ([]models.Project, error)

	// SaveWithTasks persists the project row and its mutated tasks in one
	// transaction.
	SaveWithTasks(db *gorm.DB, project *models.Project) error

	Save(db *gorm.DB, project *models.Project) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) FindOwned(db *gorm.DB, projectID, userID string) (*models.Project, error) {
	var project models.Project
	err := db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_order ASC")
		}).
		First(&project, "id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByUser(db *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_order ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) FindActiveByUser(db *gorm.DB, userID string) (*models.Project, error) {
	var project models.Project
	err := db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_order ASC")
		}).
		Where("user_id = ? AND status = ?", userID, models.ProjectStatusActive).
		Order("created_at DESC").
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindPortfolioByUser(db *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Where("user_id = ? AND portfolio_generated = ?", userID, true).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) SaveWithTasks(db *gorm.DB, project *models.Project) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range project.Tasks {
			if err := tx.Save(&project.Tasks[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Tasks").Save(project).Error
	})
}

func (r *projectRepository) Save(db *gorm.DB, project *models.Project) error {
	return db.Omit("Tasks").Save(project).Error
}
