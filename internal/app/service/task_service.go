package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
)

// TaskService derives every authorization decision from the enclosing
// project's access level; tasks carry no ACLs of their own.
type TaskService struct {
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
	projectService    ports.ProjectService
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, projectRepository ports.ProjectRepository, projectService ports.ProjectService) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
		projectService:    projectService,
	}
}

func (s *TaskService) ListForProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Task, error) {
	if _, err := s.projectAccess(ctx, userID, projectID, false); err != nil {
		return nil, err
	}
	return s.taskRepository.ListForProject(ctx, projectID)
}

func (s *TaskService) Create(ctx context.Context, userID, projectID uuid.UUID, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.projectAccess(ctx, userID, projectID, true); err != nil {
		return domain.Task{}, err
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:              uuid.New(),
		Title:           input.Title,
		Description:     input.Description,
		Status:          domain.TaskStatusTodo,
		Priority:        domain.TaskPriorityMedium,
		Type:            domain.TaskTypeTask,
		DueDate:         input.DueDate,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		DurationMinutes: input.DurationMinutes,
		ProjectID:       projectID,
		OwnerID:         userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Type != nil {
		task.Type = *input.Type
	}

	depType := domain.DependencyFinishToStart
	if input.DependencyType != nil {
		depType = *input.DependencyType
	}
	return s.taskRepository.Create(ctx, task, input.AssigneeIDs, input.DependsOnIDs, depType)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uuid.UUID) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if _, err = s.projectAccess(ctx, userID, task.ProjectID, false); err != nil {
		// A task inside an invisible project does not exist either.
		if errors.Is(err, domain.ErrProjectNotFound) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	access, err := s.projectAccessLevel(ctx, userID, task.ProjectID)
	if err != nil {
		// Soft-deleting a project leaves its tasks live; they still
		// read as absent.
		if errors.Is(err, domain.ErrProjectNotFound) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	if !access.CanRead() {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if !access.CanWrite() {
		return domain.Task{}, domain.ErrForbidden
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Type != nil {
		task.Type = *input.Type
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.StartDateSet {
		task.StartDate = input.StartDate
	}
	if input.EndDateSet {
		task.EndDate = input.EndDate
	}
	if input.DurationMinutesSet {
		task.DurationMinutes = input.DurationMinutes
	}

	var assigneeIDs, dependsOnIDs *[]uuid.UUID
	if input.AssigneeIDsSet {
		ids := input.AssigneeIDs
		if ids == nil {
			ids = []uuid.UUID{}
		}
		assigneeIDs = &ids
	}
	if input.DependsOnIDsSet {
		ids := input.DependsOnIDs
		if ids == nil {
			ids = []uuid.UUID{}
		}
		dependsOnIDs = &ids
	}
	depType := domain.DependencyFinishToStart
	if input.DependencyType != nil {
		depType = *input.DependencyType
	}

	if err = s.taskRepository.Update(ctx, task, assigneeIDs, dependsOnIDs, depType); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.GetByID(ctx, taskID)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	access, err := s.projectAccessLevel(ctx, userID, task.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	if !access.CanRead() {
		return domain.ErrTaskNotFound
	}
	if !access.CanWrite() {
		return domain.ErrForbidden
	}
	return s.taskRepository.Delete(ctx, taskID)
}

func (s *TaskService) projectAccessLevel(ctx context.Context, userID, projectID uuid.UUID) (domain.AccessLevel, error) {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.AccessNone, err
	}
	return s.projectService.Access(ctx, userID, project)
}

// projectAccess resolves the caller's level on the project and maps it
// to the not-found/forbidden split: invisible projects read as absent.
func (s *TaskService) projectAccess(ctx context.Context, userID, projectID uuid.UUID, needWrite bool) (domain.AccessLevel, error) {
	access, err := s.projectAccessLevel(ctx, userID, projectID)
	if err != nil {
		return domain.AccessNone, err
	}
	if !access.CanRead() {
		return domain.AccessNone, domain.ErrProjectNotFound
	}
	if needWrite && !access.CanWrite() {
		return domain.AccessNone, domain.ErrForbidden
	}
	return access, nil
}
