package handlers

import (
	"net/http"

	"skillpilot_backend/internal/models"
	"skillpilot_backend/internal/services"
	"skillpilot_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	*BaseHandler
	taskService services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

// SetStatus handles PATCH /api/tasks/:projectId/:taskId/status. The response
// carries the whole project so the client sees the recomputed progress and
// any auto-completion in one round trip.
func (h *TaskHandler) SetStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("projectId")
	taskID := c.Param("taskId")

	var req dto.UpdateTaskStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	project, err := h.taskService.SetTaskStatus(db, userID, projectID, taskID, models.TaskStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// Reorder handles PUT /api/tasks/:projectId/reorder.
func (h *TaskHandler) Reorder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	projectID := c.Param("projectId")

	var req dto.ReorderTasksRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	project, err := h.taskService.Reorder(db, userID, projectID, req.Tasks)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}
