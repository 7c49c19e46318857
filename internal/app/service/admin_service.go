package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/paginator"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/password"
)

type AdminService struct {
	userRepository     ports.UserRepository
	roleRepository     ports.RoleRepository
	projectRepository  ports.ProjectRepository
	taskRepository     ports.TaskRepository
	activityRepository ports.ActivityRepository
}

var _ ports.AdminService = (*AdminService)(nil)

func NewAdminService(
	userRepository ports.UserRepository,
	roleRepository ports.RoleRepository,
	projectRepository ports.ProjectRepository,
	taskRepository ports.TaskRepository,
	activityRepository ports.ActivityRepository,
) *AdminService {
	return &AdminService{
		userRepository:     userRepository,
		roleRepository:     roleRepository,
		projectRepository:  projectRepository,
		taskRepository:     taskRepository,
		activityRepository: activityRepository,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, filter domain.UserListFilter) (paginator.Page[domain.User], error) {
	filter.Page, filter.PerPage = paginator.Clamp(filter.Page, filter.PerPage)
	users, total, err := s.userRepository.ListPaged(ctx, filter)
	if err != nil {
		return paginator.Page[domain.User]{}, err
	}
	return paginator.NewPage(users, total, filter.Page, filter.PerPage), nil
}

// CreateUser provisions an account directly; unlike self-registration
// it starts active unless told otherwise.
func (s *AdminService) CreateUser(ctx context.Context, actorID uuid.UUID, input domain.CreateUserInput) (domain.User, error) {
	hash, err := password.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         domain.SystemRoleMember,
		Status:       domain.UserStatusActive,
		Language:     domain.LanguageEn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if err = s.userRepository.Insert(ctx, user); err != nil {
		return domain.User{}, err
	}

	s.recordActivity(ctx, user.ID, domain.ActivityUserCreated, describeActor(actorID))
	return user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, actorID, userID uuid.UUID, input domain.UpdateUserInput) (domain.User, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if input.Name != nil {
		user.Name = input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.Language != nil {
		user.Language = *input.Language
	}
	if err = s.userRepository.Update(ctx, user); err != nil {
		return domain.User{}, err
	}

	s.recordActivity(ctx, userID, domain.ActivityUserUpdated, describeActor(actorID))
	return s.userRepository.GetByID(ctx, userID)
}

// DeleteUser removes the account; its activity rows go with it, so the
// deletion itself is recorded against the acting admin.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if err := s.userRepository.Delete(ctx, userID); err != nil {
		return err
	}
	description := "deleted user " + userID.String()
	s.recordActivity(ctx, actorID, domain.ActivityUserDeleted, &description)
	return nil
}

func (s *AdminService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roleRepository.List(ctx)
}

func (s *AdminService) CreateRole(ctx context.Context, input domain.CreateRoleInput) (domain.Role, error) {
	now := time.Now().UTC()
	role := domain.Role{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Permissions: input.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.roleRepository.Insert(ctx, role); err != nil {
		return domain.Role{}, err
	}
	return s.roleRepository.GetByID(ctx, role.ID)
}

func (s *AdminService) UpdateRole(ctx context.Context, roleID uuid.UUID, input domain.UpdateRoleInput) (domain.Role, error) {
	role, err := s.roleRepository.GetByID(ctx, roleID)
	if err != nil {
		return domain.Role{}, err
	}

	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = input.Description
	}
	if input.PermissionsSet {
		role.Permissions = input.Permissions
	}
	if err = s.roleRepository.Update(ctx, role); err != nil {
		return domain.Role{}, err
	}
	return s.roleRepository.GetByID(ctx, roleID)
}

func (s *AdminService) DeleteRole(ctx context.Context, roleID uuid.UUID) error {
	return s.roleRepository.Delete(ctx, roleID)
}

func (s *AdminService) ListProjects(ctx context.Context, filter domain.ProjectListFilter) (paginator.Page[domain.Project], error) {
	filter.Page, filter.PerPage = paginator.Clamp(filter.Page, filter.PerPage)
	projects, total, err := s.projectRepository.ListAll(ctx, filter)
	if err != nil {
		return paginator.Page[domain.Project]{}, err
	}
	return paginator.NewPage(projects, total, filter.Page, filter.PerPage), nil
}

func (s *AdminService) ListTasks(ctx context.Context, filter domain.TaskListFilter) (paginator.Page[domain.Task], error) {
	filter.Page, filter.PerPage = paginator.Clamp(filter.Page, filter.PerPage)
	tasks, total, err := s.taskRepository.ListAll(ctx, filter)
	if err != nil {
		return paginator.Page[domain.Task]{}, err
	}
	return paginator.NewPage(tasks, total, filter.Page, filter.PerPage), nil
}

func (s *AdminService) UserActivity(ctx context.Context, days int) ([]domain.ActivityBucket, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.activityRepository.CountByDay(ctx, since)
}

func (s *AdminService) recordActivity(ctx context.Context, userID uuid.UUID, activityType domain.ActivityType, description *string) {
	err := s.activityRepository.Insert(ctx, domain.UserActivity{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		zap.L().Warn("failed to record user activity",
			zap.String("user_id", userID.String()),
			zap.String("activity", string(activityType)),
			zap.Error(err))
	}
}

func describeActor(actorID uuid.UUID) *string {
	description := "by admin " + actorID.String()
	return &description
}
