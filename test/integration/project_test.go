package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"skillpilot_backend/internal/models"
	"skillpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProject(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/projects/generate", token, map[string]interface{}{
		"interests":      "web development",
		"preferredStack": "Go",
	})

	require.Equal(t, http.StatusCreated, res.StatusCode, "got: %s", bodyStr)

	var response struct {
		Project models.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))

	project := response.Project
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, user.ID, project.UserID)
	assert.NotEmpty(t, project.Title)
	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.Equal(t, 0, project.Progress)
	assert.NotNil(t, project.SuggestedDeadline)

	// every generated task starts in the todo column, ordered
	require.NotEmpty(t, project.Tasks)
	for i, task := range project.Tasks {
		assert.Equal(t, models.TaskStatusTodo, task.Status)
		assert.Equal(t, i, task.Order)
	}
}

func TestListProjects_OnlyOwn(t *testing.T) {
	ts := GetTestServer(t)
	tokenA, userA := helpers.CreateAndLoginStudent(t, ts)
	_, userB := helpers.CreateAndLoginStudent(t, ts)

	helpers.CreateProjectWithTasks(t, ts.DB, userA.ID, models.TaskStatusTodo)
	foreign := helpers.CreateProjectWithTasks(t, ts.DB, userB.ID, models.TaskStatusTodo)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/projects", tokenA, nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, foreign.ID)

	var response struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	require.Len(t, response.Projects, 1)
	assert.Equal(t, userA.ID, response.Projects[0].UserID)
}

func TestGetActiveProject_NoneIsNull(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginStudent(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/projects/active", token, nil)

	// having no active project is a normal state, not an error
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Success bool            `json:"success"`
		Project *models.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.True(t, response.Success)
	assert.Nil(t, response.Project)
}

func TestGetProject_NotOwnedIsNotFound(t *testing.T) {
	ts := GetTestServer(t)
	tokenA, _ := helpers.CreateAndLoginStudent(t, ts)
	_, userB := helpers.CreateAndLoginStudent(t, ts)

	foreign := helpers.CreateProjectWithTasks(t, ts.DB, userB.ID, models.TaskStatusTodo)

	// someone else's project looks exactly like a missing one
	res, bodyStr := ts.SendRequest(t, "GET", "/api/projects/"+foreign.ID, tokenA, nil)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Project not found")
}

func TestUpdateProjectStatus_ManualOverride(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusTodo, models.TaskStatusTodo)

	// archive regardless of progress
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/projects/"+project.ID+"/status", token, map[string]interface{}{
		"status": "archived",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response struct {
		Project models.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, models.ProjectStatusArchived, response.Project.Status)

	// manual completion sets the completion timestamp
	res, bodyStr = ts.SendRequest(t, "PATCH", "/api/projects/"+project.ID+"/status", token, map[string]interface{}{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, models.ProjectStatusCompleted, response.Project.Status)
	assert.NotNil(t, response.Project.CompletedAt)
}

func TestUpdateProjectStatus_RejectsUnknownStatus(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusTodo)

	res, _ := ts.SendRequest(t, "PATCH", "/api/projects/"+project.ID+"/status", token, map[string]interface{}{
		"status": "paused",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGeneratePortfolio(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID,
		models.TaskStatusDone, models.TaskStatusDone, models.TaskStatusDone)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/projects/"+project.ID+"/portfolio", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response struct {
		Project models.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.True(t, response.Project.PortfolioGenerated)
	assert.NotEmpty(t, response.Project.PortfolioSummary)
	assert.NotEmpty(t, response.Project.ResumeBullets)
}

func TestPublicProjects_NoAuthNeeded(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)

	withPortfolio := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusDone)
	res, _ := ts.SendRequest(t, "POST", "/api/projects/"+withPortfolio.ID+"/portfolio", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	plain := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusTodo)

	// unauthenticated request, only portfolio-flagged projects show up
	res, bodyStr := ts.SendRequest(t, "GET", "/api/projects/public/"+user.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, withPortfolio.ID)
	assert.NotContains(t, bodyStr, plain.ID)
}
