package handlers

import (
	"net/http"

	"skillpilot_backend/internal/logger"
	"skillpilot_backend/internal/services"
	"skillpilot_backend/internal/services/dto"
	"skillpilot_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	*BaseHandler
	recruiterService services.RecruiterService
}

func NewRecruiterHandler(base *BaseHandler, recruiterService services.RecruiterService) *RecruiterHandler {
	return &RecruiterHandler{
		BaseHandler:      base,
		recruiterService: recruiterService,
	}
}

// BrowseStudents handles GET /api/recruiter/students.
func (h *RecruiterHandler) BrowseStudents(c *gin.Context) {
	var query dto.BrowseStudentsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)
	result, err := h.recruiterService.BrowseStudents(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"students":   result.Students,
		"pagination": result.Pagination,
	})
}

// GetStudentProfile handles GET /api/recruiter/students/:id.
func (h *RecruiterHandler) GetStudentProfile(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Student ID is required"))
		return
	}

	db := h.GetDB(c)
	result, err := h.recruiterService.GetStudentProfile(db, studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"student":  result.Student,
		"projects": result.Projects,
	})
}

// GenerateSkillScore handles GET /api/recruiter/students/:id/skill-score.
// It recomputes and persists the score on every call.
func (h *RecruiterHandler) GenerateSkillScore(c *gin.Context) {
	studentID := c.Param("id")
	if studentID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Student ID is required"))
		return
	}

	db := h.GetDB(c)
	score, err := h.recruiterService.GenerateSkillScore(c.Request.Context(), db, studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "skill score generated",
		"student_id", studentID,
		"score", score.Score,
	)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"skillScore": score,
	})
}
