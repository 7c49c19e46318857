package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Insert(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) ListPaged(ctx context.Context, filter domain.UserListFilter) ([]domain.User, int, error) {
	args := m.Called(ctx, filter)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Int(1), args.Error(2)
}

func (m *userRepositoryMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *userRepositoryMock) SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type activityRepositoryMock struct {
	mock.Mock
}

func (m *activityRepositoryMock) Insert(ctx context.Context, activity domain.UserActivity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *activityRepositoryMock) CountByDay(ctx context.Context, since time.Time) ([]domain.ActivityBucket, error) {
	args := m.Called(ctx, since)

	var buckets []domain.ActivityBucket
	if value := args.Get(0); value != nil {
		buckets = value.([]domain.ActivityBucket)
	}
	return buckets, args.Error(1)
}

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) Create(ctx context.Context, project domain.Project, memberIDs []uuid.UUID) (domain.Project, error) {
	args := m.Called(ctx, project, memberIDs)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) Update(ctx context.Context, project domain.Project, members *[]uuid.UUID) error {
	return m.Called(ctx, project, members).Error(0)
}

func (m *projectRepositoryMock) SoftDelete(ctx context.Context, id, byUserID uuid.UUID) error {
	return m.Called(ctx, id, byUserID).Error(0)
}

func (m *projectRepositoryMock) ParentOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	args := m.Called(ctx, id)

	var parent *uuid.UUID
	if value := args.Get(0); value != nil {
		parent = value.(*uuid.UUID)
	}
	return parent, args.Error(1)
}

func (m *projectRepositoryMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *projectRepositoryMock) MemberRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Get(0).(domain.ProjectRole), args.Bool(1), args.Error(2)
}

func (m *projectRepositoryMock) ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	args := m.Called(ctx, projectID)

	var members []domain.ProjectMember
	if value := args.Get(0); value != nil {
		members = value.([]domain.ProjectMember)
	}
	return members, args.Error(1)
}

func (m *projectRepositoryMock) UpsertMember(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error {
	return m.Called(ctx, projectID, userID, role).Error(0)
}

func (m *projectRepositoryMock) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

func (m *projectRepositoryMock) ListAll(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, int, error) {
	args := m.Called(ctx, filter)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Int(1), args.Error(2)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task domain.Task, assigneeIDs, dependsOnIDs []uuid.UUID, depType domain.DependencyType) (domain.Task, error) {
	args := m.Called(ctx, task, assigneeIDs, dependsOnIDs, depType)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task, assigneeIDs, dependsOnIDs *[]uuid.UUID, depType domain.DependencyType) error {
	return m.Called(ctx, task, assigneeIDs, dependsOnIDs, depType).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) ListAll(ctx context.Context, filter domain.TaskListFilter) ([]domain.Task, int, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Int(1), args.Error(2)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) ListForAnchor(ctx context.Context, anchor domain.CommentAnchor) ([]domain.Comment, error) {
	args := m.Called(ctx, anchor)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepositoryMock) Update(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *commentRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type roleRepositoryMock struct {
	mock.Mock
}

func (m *roleRepositoryMock) Insert(ctx context.Context, role domain.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *roleRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Role), args.Error(1)
}

func (m *roleRepositoryMock) GetByName(ctx context.Context, name string) (domain.Role, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Role), args.Error(1)
}

func (m *roleRepositoryMock) List(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)

	var roles []domain.Role
	if value := args.Get(0); value != nil {
		roles = value.([]domain.Role)
	}
	return roles, args.Error(1)
}

func (m *roleRepositoryMock) Update(ctx context.Context, role domain.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *roleRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type settingRepositoryMock struct {
	mock.Mock
}

func (m *settingRepositoryMock) Insert(ctx context.Context, setting domain.SystemSetting) error {
	return m.Called(ctx, setting).Error(0)
}

func (m *settingRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (domain.SystemSetting, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.SystemSetting), args.Error(1)
}

func (m *settingRepositoryMock) GetByName(ctx context.Context, name string) (domain.SystemSetting, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.SystemSetting), args.Error(1)
}

func (m *settingRepositoryMock) ListPaged(ctx context.Context, filter domain.SettingListFilter) ([]domain.SystemSetting, int, error) {
	args := m.Called(ctx, filter)

	var settings []domain.SystemSetting
	if value := args.Get(0); value != nil {
		settings = value.([]domain.SystemSetting)
	}
	return settings, args.Int(1), args.Error(2)
}

func (m *settingRepositoryMock) Update(ctx context.Context, setting domain.SystemSetting) error {
	return m.Called(ctx, setting).Error(0)
}

func (m *settingRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
