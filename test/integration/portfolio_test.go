package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"skillpilot_backend/internal/models"
	"skillpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicPortfolio_SlugResolvesName(t *testing.T) {
	ts := GetTestServer(t)

	name := fmt.Sprintf("Alice Porter %d", time.Now().UnixNano())
	token, _, user := helpers.CreateAndLoginUser(t, ts, name, uniqueEmail("portfolio"), "password123", models.UserRoleStudent)

	project := helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusDone)
	res, _ := ts.SendRequest(t, "POST", "/api/projects/"+project.ID+"/portfolio", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// hyphens stand in for spaces, matching is case-insensitive, no auth
	res, bodyStr := ts.SendRequest(t, "GET", "/api/portfolio/"+strings.ToUpper(slugFromName(name)), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "got: %s", bodyStr)

	var response struct {
		Portfolio struct {
			Name     string           `json:"name"`
			Projects []models.Project `json:"projects"`
		} `json:"portfolio"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, name, response.Portfolio.Name)
	require.Len(t, response.Portfolio.Projects, 1)
	assert.Equal(t, project.ID, response.Portfolio.Projects[0].ID)
}

func TestPublicPortfolio_UnknownNameIsNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/portfolio/nobody-here-at-all", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPublicPortfolio_OnlyGeneratedProjects(t *testing.T) {
	ts := GetTestServer(t)

	name := fmt.Sprintf("Bob Builder %d", time.Now().UnixNano())
	_, _, user := helpers.CreateAndLoginUser(t, ts, name, uniqueEmail("plainpf"), "password123", models.UserRoleStudent)

	// a project without generated portfolio content stays private
	helpers.CreateProjectWithTasks(t, ts.DB, user.ID, models.TaskStatusDone)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/portfolio/"+slugFromName(name), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Portfolio struct {
			Projects []models.Project `json:"projects"`
		} `json:"portfolio"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Empty(t, response.Portfolio.Projects)
}

// slugFromName mimics what a frontend does with a display name.
func slugFromName(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}
