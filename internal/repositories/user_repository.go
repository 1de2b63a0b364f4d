package repositories

import (
	"errors"
	"strings"

	"skillpilot_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Update(db *gorm.DB, user *models.User) error
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) (*models.User, error)

	// SetRefreshToken overwrites the single active refresh-token slot.
	// nil clears it (logout).
	SetRefreshToken(db *gorm.DB, userID string, token *string) error

	// FindStudentByID finds a user that exists AND has the student role.
	FindStudentByID(db *gorm.DB, id string) (*models.User, error)

	// FindStudents returns a page of students ordered by skill score,
	// optionally filtered by a search term over name, skills and university.
	FindStudents(db *gorm.DB, search string, page, limit int) ([]models.User, int64, error)

	// FindStudentByNameSlug matches a display name case-insensitively,
	// with hyphens in the slug treated as spaces.
	FindStudentByNameSlug(db *gorm.DB, slug string) (*models.User, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *userRepository) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) (*models.User, error) {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(db, userID)
}

func (r *userRepository) SetRefreshToken(db *gorm.DB, userID string, token *string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindStudentByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ? AND role = ?", id, models.UserRoleStudent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindStudents(db *gorm.DB, search string, page, limit int) ([]models.User, int64, error) {
	query := db.Model(&models.User{}).Where("role = ?", models.UserRoleStudent)

	if search != "" {
		// Skills are stored as a JSON array; a LIKE over the serialized
		// column is how the search reaches into them.
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(skills) LIKE ? OR LOWER(university) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []models.User
	err := query.
		Order("skill_score DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *userRepository) FindStudentByNameSlug(db *gorm.DB, slug string) (*models.User, error) {
	name := strings.ReplaceAll(slug, "-", " ")

	var user models.User
	err := db.First(&user, "LOWER(name) = LOWER(?) AND role = ?", name, models.UserRoleStudent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
