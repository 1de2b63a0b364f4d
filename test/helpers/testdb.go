package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"skillpilot_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password when it is still raw.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "hashing test password")
		user.PasswordHash = string(hashed)
	}

	require.NoError(t, db.Create(user).Error, "creating test user %s", user.Email)
}

// CreateAndLoginUser creates a user and logs them in via the API. It returns
// the access token, the login response cookies and the user record.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, []*http.Cookie, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", bodyStr)

	var loginResponse struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, res.Cookies(), user
}

// CreateAndLoginStudent creates a student with a unique email.
func CreateAndLoginStudent(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("student_%d@test.com", time.Now().UnixNano())
	token, _, user := CreateAndLoginUser(t, ts, "Test Student", email, "password123", models.UserRoleStudent)
	return token, user
}

// CreateAndLoginRecruiter creates a recruiter with a unique email.
func CreateAndLoginRecruiter(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("recruiter_%d@test.com", time.Now().UnixNano())
	token, _, user := CreateAndLoginUser(t, ts, "Test Recruiter", email, "password123", models.UserRoleRecruiter)
	return token, user
}

// CreateProjectWithTasks inserts a project owned by userID with one task per
// status given, in board order.
func CreateProjectWithTasks(t *testing.T, db *gorm.DB, userID string, statuses ...models.TaskStatus) *models.Project {
	project := &models.Project{
		UserID:      userID,
		Title:       "Test Project",
		Description: "A project seeded for tests",
		Difficulty:  models.DifficultyIntermediate,
		TechStack:   []string{"Go", "PostgreSQL"},
		Status:      models.ProjectStatusActive,
	}
	for i, status := range statuses {
		project.Tasks = append(project.Tasks, models.Task{
			Title:       fmt.Sprintf("Task %d", i+1),
			Description: "Seeded task",
			Status:      status,
			Order:       i,
		})
	}
	project.Progress = project.CalculateProgress()

	require.NoError(t, db.Create(project).Error, "creating test project")
	return project
}
