package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name     string
		statuses []TaskStatus
		want     int
	}{
		{"no tasks", nil, 0},
		{"none done", []TaskStatus{TaskStatusTodo, TaskStatusInProgress}, 0},
		{"half done", []TaskStatus{TaskStatusDone, TaskStatusDone, TaskStatusTodo, TaskStatusTodo}, 50},
		{"one of three rounds to 33", []TaskStatus{TaskStatusDone, TaskStatusTodo, TaskStatusTodo}, 33},
		{"two of three rounds to 67", []TaskStatus{TaskStatusDone, TaskStatusDone, TaskStatusTodo}, 67},
		{"all done", []TaskStatus{TaskStatusDone, TaskStatusDone}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Project{}
			for _, s := range tt.statuses {
				p.Tasks = append(p.Tasks, Task{Status: s})
			}
			assert.Equal(t, tt.want, p.CalculateProgress())
		})
	}
}

func TestRefreshProgress_AutoCompletes(t *testing.T) {
	now := time.Now()
	p := &Project{
		Status: ProjectStatusActive,
		Tasks:  []Task{{Status: TaskStatusDone}, {Status: TaskStatusDone}},
	}

	p.RefreshProgress(now)

	assert.Equal(t, 100, p.Progress)
	assert.Equal(t, ProjectStatusCompleted, p.Status)
	if assert.NotNil(t, p.CompletedAt) {
		assert.Equal(t, now, *p.CompletedAt)
	}
}

func TestRefreshProgress_OneWayTransition(t *testing.T) {
	completedAt := time.Now().Add(-time.Hour)
	p := &Project{
		Status:      ProjectStatusCompleted,
		CompletedAt: &completedAt,
		Tasks:       []Task{{Status: TaskStatusDone}, {Status: TaskStatusTodo}},
	}

	// dropping below 100 never reopens a completed project
	p.RefreshProgress(time.Now())

	assert.Equal(t, 50, p.Progress)
	assert.Equal(t, ProjectStatusCompleted, p.Status)
	assert.Equal(t, completedAt, *p.CompletedAt)
}

func TestRefreshProgress_ArchivedNeverAutoCompletes(t *testing.T) {
	p := &Project{
		Status: ProjectStatusArchived,
		Tasks:  []Task{{Status: TaskStatusDone}},
	}

	p.RefreshProgress(time.Now())

	assert.Equal(t, 100, p.Progress)
	assert.Equal(t, ProjectStatusArchived, p.Status)
	assert.Nil(t, p.CompletedAt)
}
