package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

// "done" and "completed" are both terminal and deliberately kept as two
// distinct values; clients use both.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type TaskType string

const (
	TaskTypeTask    TaskType = "task"
	TaskTypeMeeting TaskType = "meeting"
)

// DependencyType is one of the four interval relations. It is stored
// metadata only; no scheduler consumes it.
type DependencyType string

const (
	DependencyFinishToStart  DependencyType = "finish-to-start"
	DependencyStartToStart   DependencyType = "start-to-start"
	DependencyFinishToFinish DependencyType = "finish-to-finish"
	DependencyStartToFinish  DependencyType = "start-to-finish"
)

type Task struct {
	ID              uuid.UUID
	Title           string
	Description     *string
	Status          TaskStatus
	Priority        TaskPriority
	Type            TaskType
	DueDate         *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	DurationMinutes *int
	ProjectID       uuid.UUID
	OwnerID         uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Owner        *User
	Project      *ProjectRef
	Assignees    []User
	Dependencies []TaskDependency
}

// ProjectRef is the minimal project projection nested in task payloads.
type ProjectRef struct {
	ID   uuid.UUID
	Name string
}

// TaskRef is the minimal task projection used in dependency lists.
type TaskRef struct {
	ID     uuid.UUID
	Title  string
	Status TaskStatus
}

// TaskDependency is one outgoing edge of the dependency graph.
type TaskDependency struct {
	DependsOn TaskRef
	Type      DependencyType
}

type CreateTaskInput struct {
	Title           string
	Description     *string
	Status          *TaskStatus
	Priority        *TaskPriority
	Type            *TaskType
	DueDate         *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	DurationMinutes *int
	AssigneeIDs     []uuid.UUID
	DependsOnIDs    []uuid.UUID
	// DependencyType applies uniformly to every edge created here; the
	// creation contract cannot set a type per edge.
	DependencyType *DependencyType
}

// UpdateTaskInput mirrors the project update tri-state convention for
// both collection fields.
type UpdateTaskInput struct {
	Title              *string
	Description        *string
	DescriptionSet     bool
	Status             *TaskStatus
	Priority           *TaskPriority
	Type               *TaskType
	DueDate            *time.Time
	DueDateSet         bool
	StartDate          *time.Time
	StartDateSet       bool
	EndDate            *time.Time
	EndDateSet         bool
	DurationMinutes    *int
	DurationMinutesSet bool
	AssigneeIDs        []uuid.UUID
	AssigneeIDsSet     bool
	DependsOnIDs       []uuid.UUID
	DependsOnIDsSet    bool
	DependencyType     *DependencyType
}

type TaskListFilter struct {
	Status   *TaskStatus
	SortBy   string
	SortDesc bool
	Page     int
	PerPage  int
}
