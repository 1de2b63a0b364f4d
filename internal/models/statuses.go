package models

type UserRole string
type ProjectStatus string
type ProjectDifficulty string
type TaskStatus string
type MessageRole string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleRecruiter UserRole = "recruiter"

	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"

	DifficultyBeginner     ProjectDifficulty = "beginner"
	DifficultyIntermediate ProjectDifficulty = "intermediate"
	DifficultyAdvanced     ProjectDifficulty = "advanced"

	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"

	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)
