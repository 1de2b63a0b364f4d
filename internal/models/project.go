package models

import (
	"math"
	"time"
)

type Project struct {
	BaseModel
	UserID      string            `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string            `gorm:"not null" json:"title"`
	Description string            `gorm:"not null" json:"description"`
	Difficulty  ProjectDifficulty `gorm:"type:varchar(20);not null" json:"difficulty"`
	TechStack   []string          `gorm:"serializer:json" json:"techStack"`

	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks"`

	SuggestedDeadline *time.Time    `json:"suggestedDeadline,omitempty"`
	Progress          int           `gorm:"default:0" json:"progress"`
	Status            ProjectStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CompletedAt       *time.Time    `json:"completedAt,omitempty"`

	// Portfolio fields, populated once by the AI gateway
	PortfolioGenerated bool     `gorm:"default:false" json:"portfolioGenerated"`
	PortfolioSummary   string   `json:"portfolioSummary,omitempty"`
	SkillsLearned      []string `gorm:"serializer:json" json:"skillsLearned,omitempty"`
	ResumeBullets      []string `gorm:"serializer:json" json:"resumeBullets,omitempty"`
}

type Task struct {
	BaseModel
	ProjectID   string     `gorm:"type:uuid;not null;index" json:"projectId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);default:'todo'" json:"status"`
	Order       int        `gorm:"column:task_order;not null" json:"order"`
}

// CalculateProgress returns the rounded percentage of done tasks.
// A project with no tasks has progress 0.
func (p *Project) CalculateProgress() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Status == TaskStatusDone {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(p.Tasks)) * 100))
}

// RefreshProgress recomputes progress and applies the auto-completion
// rule: the instant progress hits 100 while the project is active, it
// becomes completed with CompletedAt set. The transition is one-way;
// later task mutations never flip a completed project back.
func (p *Project) RefreshProgress(now time.Time) {
	p.Progress = p.CalculateProgress()
	if p.Progress == 100 && p.Status == ProjectStatusActive {
		p.Status = ProjectStatusCompleted
		p.CompletedAt = &now
	}
}
