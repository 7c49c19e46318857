package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type ProjectPriority string

const (
	ProjectPriorityLow    ProjectPriority = "low"
	ProjectPriorityMedium ProjectPriority = "medium"
	ProjectPriorityHigh   ProjectPriority = "high"
)

// ProjectRole is the project-scoped membership role, distinct from the
// system-wide SystemRole.
type ProjectRole string

const (
	ProjectRoleViewer ProjectRole = "viewer"
	ProjectRoleEditor ProjectRole = "editor"
)

// AccessLevel is the resolved relationship between a user and a project.
// Every project/task/comment authorization decision goes through it.
type AccessLevel int

const (
	AccessNone AccessLevel = iota
	AccessViewer
	AccessEditor
	AccessOwner
)

func (l AccessLevel) CanRead() bool  { return l >= AccessViewer }
func (l AccessLevel) CanWrite() bool { return l >= AccessEditor }

func (l AccessLevel) String() string {
	switch l {
	case AccessViewer:
		return "viewer"
	case AccessEditor:
		return "editor"
	case AccessOwner:
		return "owner"
	default:
		return "none"
	}
}

type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Status      ProjectStatus
	Priority    ProjectPriority
	Progress    int
	StartDate   *time.Time
	EndDate     *time.Time
	ParentID    *uuid.UUID
	OwnerID     uuid.UUID
	CreatedByID uuid.UUID
	UpdatedByID *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	Owner   *User
	Members []ProjectMember
}

// ProjectMember is one (project, user) association row.
type ProjectMember struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Role      ProjectRole
	AddedAt   time.Time

	User *User
}

type CreateProjectInput struct {
	Name          string
	Description   *string
	Status        *ProjectStatus
	Priority      *ProjectPriority
	Progress      *int
	StartDate     *time.Time
	EndDate       *time.Time
	ParentID      *uuid.UUID
	TeamMemberIDs []uuid.UUID
}

// UpdateProjectInput is a partial update. TeamMemberIDs is tri-state:
// TeamMemberIDsSet false leaves membership untouched, true replaces the
// whole member set (the owner is always re-inserted as editor).
type UpdateProjectInput struct {
	Name             *string
	Description      *string
	DescriptionSet   bool
	Status           *ProjectStatus
	Priority         *ProjectPriority
	Progress         *int
	StartDate        *time.Time
	StartDateSet     bool
	EndDate          *time.Time
	EndDateSet       bool
	ParentID         *uuid.UUID
	ParentIDSet      bool
	TeamMemberIDs    []uuid.UUID
	TeamMemberIDsSet bool
}

// ProjectListFilter is the admin list-all query: unlike the member-scoped
// listing it sees every project, soft-deleted included.
type ProjectListFilter struct {
	Status   *ProjectStatus
	SortBy   string
	SortDesc bool
	Page     int
	PerPage  int
}
