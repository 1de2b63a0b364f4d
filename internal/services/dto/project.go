package dto

type GenerateProjectRequest struct {
	Interests      string `json:"interests" validate:"omitempty,max=500"`
	PreferredStack string `json:"preferredStack" validate:"omitempty,max=500"`
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed archived"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in-progress done"`
}

type ReorderTasksRequest struct {
	Tasks []TaskReorderUpdate `json:"tasks" validate:"required,dive"`
}

// TaskReorderUpdate is one board move: a task lands in a status column at
// a caller-chosen position. Unknown task ids are skipped without error.
type TaskReorderUpdate struct {
	TaskID string `json:"taskId" validate:"required"`
	Status string `json:"status" validate:"required,oneof=todo in-progress done"`
	Order  int    `json:"order" validate:"min=0"`
}
