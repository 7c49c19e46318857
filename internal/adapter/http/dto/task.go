package dto

type TaskItem struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     *string          `json:"description,omitempty"`
	Status          string           `json:"status"`
	Priority        string           `json:"priority"`
	Type            string           `json:"type"`
	DueDate         *string          `json:"due_date,omitempty"`
	StartDate       *string          `json:"start_date,omitempty"`
	EndDate         *string          `json:"end_date,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty"`
	Project         *ProjectRefItem  `json:"project,omitempty"`
	OwnerID         string           `json:"owner_id"`
	Owner           *UserItem        `json:"owner,omitempty"`
	Assignees       []UserItem       `json:"assignees"`
	Dependencies    []DependencyItem `json:"dependencies"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

type ProjectRefItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskRefItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type DependencyItem struct {
	Task TaskRefItem `json:"task"`
	Type string      `json:"type"`
}

type CreateTaskRequest struct {
	Title           string   `json:"title" binding:"required,max=255"`
	Description     *string  `json:"description" binding:"omitempty,max=65535"`
	Status          *string  `json:"status" binding:"omitempty,oneof=todo in_progress review done completed"`
	Priority        *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Type            *string  `json:"type" binding:"omitempty,oneof=task meeting"`
	DueDate         *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	StartDate       *string  `json:"start_date" binding:"omitempty"`
	EndDate         *string  `json:"end_date" binding:"omitempty"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gte=0"`
	AssigneeIDs     []string `json:"assignee_ids" binding:"omitempty,dive,uuid"`
	DependsOnIDs    []string `json:"depends_on_task_ids" binding:"omitempty,dive,uuid"`
	DependencyType  *string  `json:"dependency_type" binding:"omitempty,oneof=finish-to-start start-to-start finish-to-finish start-to-finish"`
}

type UpdateTaskRequest struct {
	Title           *string  `json:"title" binding:"omitempty,max=255"`
	Description     *string  `json:"description" binding:"omitempty,max=65535"`
	Status          *string  `json:"status" binding:"omitempty,oneof=todo in_progress review done completed"`
	Priority        *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Type            *string  `json:"type" binding:"omitempty,oneof=task meeting"`
	DueDate         *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	StartDate       *string  `json:"start_date" binding:"omitempty"`
	EndDate         *string  `json:"end_date" binding:"omitempty"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gte=0"`
	AssigneeIDs     []string `json:"assignee_ids" binding:"omitempty,dive,uuid"`
	DependsOnIDs    []string `json:"depends_on_task_ids" binding:"omitempty,dive,uuid"`
	DependencyType  *string  `json:"dependency_type" binding:"omitempty,oneof=finish-to-start start-to-start finish-to-finish start-to-finish"`
}
