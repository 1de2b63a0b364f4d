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

type projectResponse struct {
	Project models.Project `json:"project"`
}

func TestSetTaskStatus_RecomputesProgress(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID,
		models.TaskStatusDone, models.TaskStatusTodo, models.TaskStatusTodo, models.TaskStatusTodo)

	// 1 of 4 done = 25; finishing a second task makes it 50
	res, bodyStr := ts.SendRequest(t, "PATCH",
		"/api/tasks/"+project.ID+"/"+project.Tasks[1].ID+"/status", token,
		map[string]interface{}{"status": "done"})
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response projectResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, 50, response.Project.Progress)
	assert.Equal(t, models.ProjectStatusActive, response.Project.Status)
}

func TestSetTaskStatus_AutoCompletesAtFullProgress(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID,
		models.TaskStatusDone, models.TaskStatusTodo)

	res, bodyStr := ts.SendRequest(t, "PATCH",
		"/api/tasks/"+project.ID+"/"+project.Tasks[1].ID+"/status", token,
		map[string]interface{}{"status": "done"})
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response projectResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, 100, response.Project.Progress)
	assert.Equal(t, models.ProjectStatusCompleted, response.Project.Status)
	assert.NotNil(t, response.Project.CompletedAt)
}

func TestSetTaskStatus_NoRevertFromCompleted(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID,
		models.TaskStatusDone, models.TaskStatusTodo)

	// complete the project via the board
	res, _ := ts.SendRequest(t, "PATCH",
		"/api/tasks/"+project.ID+"/"+project.Tasks[1].ID+"/status", token,
		map[string]interface{}{"status": "done"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// moving a task back drops progress but never reopens the project
	res, bodyStr := ts.SendRequest(t, "PATCH",
		"/api/tasks/"+project.ID+"/"+project.Tasks[0].ID+"/status", token,
		map[string]interface{}{"status": "in-progress"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var response projectResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, 50, response.Project.Progress)
	assert.Equal(t, models.ProjectStatusCompleted, response.Project.Status)
}

func TestSetTaskStatus_UnknownTask(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusTodo)

	res, bodyStr := ts.SendRequest(t, "PATCH",
		"/api/tasks/"+project.ID+"/00000000-0000-0000-0000-000000000000/status", token,
		map[string]interface{}{"status": "done"})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Task not found")
}

func TestReorderTasks(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID,
		models.TaskStatusTodo, models.TaskStatusTodo, models.TaskStatusTodo)

	// move the first task to the end of the in-progress column
	updates := map[string]interface{}{
		"tasks": []map[string]interface{}{
			{"taskId": project.Tasks[0].ID, "status": "in-progress", "order": 2},
			{"taskId": project.Tasks[1].ID, "status": "todo", "order": 0},
			{"taskId": project.Tasks[2].ID, "status": "todo", "order": 1},
		},
	}

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/tasks/"+project.ID+"/reorder", token, updates)
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response projectResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))

	byID := map[string]models.Task{}
	for _, task := range response.Project.Tasks {
		byID[task.ID] = task
	}
	assert.Equal(t, models.TaskStatusInProgress, byID[project.Tasks[0].ID].Status)
	assert.Equal(t, 2, byID[project.Tasks[0].ID].Order)
	assert.Equal(t, 0, byID[project.Tasks[1].ID].Order)
}

func TestReorderTasks_SkipsUnknownIDs(t *testing.T) {
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusTodo)

	updates := map[string]interface{}{
		"tasks": []map[string]interface{}{
			{"taskId": "00000000-0000-0000-0000-000000000000", "status": "done", "order": 5},
			{"taskId": project.Tasks[0].ID, "status": "done", "order": 0},
		},
	}

	// the unknown id is ignored, the known one applies
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/tasks/"+project.ID+"/reorder", token, updates)
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response projectResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	require.Len(t, response.Project.Tasks, 1)
	assert.Equal(t, models.TaskStatusDone, response.Project.Tasks[0].Status)
	assert.Equal(t, 100, response.Project.Progress)
}

func TestTasks_RecruiterForbidden(t *testing.T) {
	ts := GetTestServer(t)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts)
	_, student := helpers.CreateAndLoginStudent(t, ts)
	project := helpers.CreateProjectWithTasks(t, ts.DB, student.ID, models.TaskStatusTodo)

	res, bodyStr := ts.SendRequest(t, "PATCH",
		"/api/tasks/"+project.ID+"/"+project.Tasks[0].ID+"/status", recruiterToken,
		map[string]interface{}{"status": "done"})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Insufficient permissions")
}
