package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"skillpilot_backend/internal/models"
	"skillpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseStudents_RoleEnforced(t *testing.T) {
	ts := GetTestServer(t)
	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	// students cannot browse other students
	res, bodyStr := ts.SendRequest(t, "GET", "/api/recruiter/students", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Insufficient permissions")

	// and nobody gets in without a token
	res, _ = ts.SendRequest(t, "GET", "/api/recruiter/students", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestBrowseStudents_SearchAndPagination(t *testing.T) {
	ts := GetTestServer(t)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts)

	marker := fmt.Sprintf("zq%d", time.Now().UnixNano())
	for i := 0; i < 3; i++ {
		helpers.CreateUser(t, ts.DB, &models.User{
			Name:         fmt.Sprintf("Searchable %s %d", marker, i),
			Email:        uniqueEmail(fmt.Sprintf("browse%d", i)),
			PasswordHash: "password123",
			Role:         models.UserRoleStudent,
			SkillScore:   50 + i,
		})
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/recruiter/students?search="+marker+"&page=1&limit=2", recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response struct {
		Students   []models.User `json:"students"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))

	assert.Len(t, response.Students, 2)
	assert.Equal(t, int64(3), response.Pagination.Total)
	assert.Equal(t, 2, response.Pagination.Pages)

	// ordered by skill score, best first
	assert.GreaterOrEqual(t, response.Students[0].SkillScore, response.Students[1].SkillScore)

	// recruiters never see each other in the listing
	for _, student := range response.Students {
		assert.Equal(t, models.UserRoleStudent, student.Role)
	}
}

func TestGetStudentProfile(t *testing.T) {
	ts := GetTestServer(t)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts)
	_, student := helpers.CreateAndLoginStudent(t, ts)
	helpers.CreateProjectWithTasks(t, ts.DB, student.ID, models.TaskStatusDone)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/recruiter/students/"+student.ID, recruiterToken, nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, student.Name)
	assert.Contains(t, bodyStr, "Test Project")
}

func TestGetStudentProfile_RecruiterIDIsNotFound(t *testing.T) {
	ts := GetTestServer(t)
	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts)

	// a recruiter id resolves to nothing on the student endpoints
	res, _ := ts.SendRequest(t, "GET", "/api/recruiter/students/"+recruiter.ID, recruiterToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGenerateSkillScore_Persists(t *testing.T) {
	ts := GetTestServer(t)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts)
	_, student := helpers.CreateAndLoginStudent(t, ts)
	helpers.CreateProjectWithTasks(t, ts.DB, student.ID, models.TaskStatusDone, models.TaskStatusDone)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/recruiter/students/"+student.ID+"/skill-score", recruiterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response struct {
		SkillScore struct {
			Score     int `json:"score"`
			Breakdown []struct {
				Category string `json:"category"`
			} `json:"breakdown"`
		} `json:"skillScore"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Greater(t, response.SkillScore.Score, 0)
	assert.NotEmpty(t, response.SkillScore.Breakdown)

	// the score lands on the student record
	var stored models.User
	require.NoError(t, ts.DB.First(&stored, "id = ?", student.ID).Error)
	assert.Equal(t, response.SkillScore.Score, stored.SkillScore)
	assert.NotEmpty(t, stored.SkillScoreDetail)
}
