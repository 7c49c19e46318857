package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/paginator"
)

type SettingRepository interface {
	Insert(ctx context.Context, setting domain.SystemSetting) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.SystemSetting, error)
	GetByName(ctx context.Context, name string) (domain.SystemSetting, error)
	ListPaged(ctx context.Context, filter domain.SettingListFilter) ([]domain.SystemSetting, int, error)
	Update(ctx context.Context, setting domain.SystemSetting) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminService backs the /admin/* surface. The HTTP layer has already
// verified the caller's system role by the time these run; actorID is
// only recorded in the activity trail.
type AdminService interface {
	ListUsers(ctx context.Context, filter domain.UserListFilter) (paginator.Page[domain.User], error)
	CreateUser(ctx context.Context, actorID uuid.UUID, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, actorID, userID uuid.UUID, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error

	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, input domain.CreateRoleInput) (domain.Role, error)
	UpdateRole(ctx context.Context, roleID uuid.UUID, input domain.UpdateRoleInput) (domain.Role, error)
	DeleteRole(ctx context.Context, roleID uuid.UUID) error

	ListProjects(ctx context.Context, filter domain.ProjectListFilter) (paginator.Page[domain.Project], error)
	ListTasks(ctx context.Context, filter domain.TaskListFilter) (paginator.Page[domain.Task], error)
	UserActivity(ctx context.Context, days int) ([]domain.ActivityBucket, error)
}

type SettingsService interface {
	List(ctx context.Context, filter domain.SettingListFilter) (paginator.Page[domain.SystemSetting], error)
	Create(ctx context.Context, input domain.CreateSettingInput) (domain.SystemSetting, error)
	Get(ctx context.Context, id uuid.UUID) (domain.SystemSetting, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateSettingInput) (domain.SystemSetting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
