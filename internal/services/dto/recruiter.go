package dto

import "skillpilot_backend/internal/models"

type BrowseStudentsQuery struct {
	Search string `form:"search" validate:"omitempty,max=200"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type StudentListResult struct {
	Students   []models.User
	Pagination Pagination
}

type StudentProfileResult struct {
	Student  *models.User
	Projects []models.Project
}

// PublicPortfolio is the unauthenticated portfolio page payload.
type PublicPortfolio struct {
	Name       string           `json:"name"`
	Bio        string           `json:"bio,omitempty"`
	Avatar     string           `json:"avatar,omitempty"`
	Skills     []string         `json:"skills"`
	University string           `json:"university,omitempty"`
	Github     string           `json:"github,omitempty"`
	Linkedin   string           `json:"linkedin,omitempty"`
	SkillScore int              `json:"skillScore"`
	Projects   []models.Project `json:"projects"`
}
