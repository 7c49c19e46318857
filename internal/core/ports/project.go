package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

type ProjectRepository interface {
	// Create inserts the project, the owner's editor membership and any
	// extra members as viewers in one transaction. Member ids that do
	// not resolve to an existing user are skipped silently.
	Create(ctx context.Context, project domain.Project, memberIDs []uuid.UUID) (domain.Project, error)
	// GetByID returns a non-deleted project with owner and members
	// eager-loaded, regardless of who is asking; visibility is the
	// service's concern.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	// Update writes the scalar columns and, when members is non-nil,
	// replaces the whole membership set (owner re-kept as editor) in the
	// same transaction.
	Update(ctx context.Context, project domain.Project, members *[]uuid.UUID) error
	SoftDelete(ctx context.Context, id, byUserID uuid.UUID) error
	ParentOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	MemberRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error)
	ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error)
	// UpsertMember adds the user or, when already a member, updates the
	// role in place.
	UpsertMember(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error

	// ListAll is the admin view: every project, soft-deleted included.
	ListAll(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, int, error)
}

type ProjectService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateProjectInput) (domain.Project, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, input domain.UpdateProjectInput) (domain.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
	Members(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectMember, error)
	AddMember(ctx context.Context, userID, projectID, memberID uuid.UUID, role domain.ProjectRole) (domain.Project, error)
	RemoveMember(ctx context.Context, userID, projectID, memberID uuid.UUID) error
	// Access resolves the caller's relationship to a project; the task
	// and comment services inherit their checks from it.
	Access(ctx context.Context, userID uuid.UUID, project domain.Project) (domain.AccessLevel, error)
}
