package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

type TaskRepository interface {
	// Create inserts the task, its assignee links (active users only;
	// others dropped silently) and its dependency edges in one
	// transaction. Edge targets that do not exist are skipped.
	Create(ctx context.Context, task domain.Task, assigneeIDs, dependsOnIDs []uuid.UUID, depType domain.DependencyType) (domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)
	// Update writes scalar columns; non-nil assigneeIDs/dependsOnIDs
	// replace the respective whole set in the same transaction
	// (dependency replace deletes every outgoing edge first).
	Update(ctx context.Context, task domain.Task, assigneeIDs, dependsOnIDs *[]uuid.UUID, depType domain.DependencyType) error
	// Delete removes assignee links, edges in both directions, then the
	// row, one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context, filter domain.TaskListFilter) ([]domain.Task, int, error)
}

type TaskService interface {
	ListForProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, userID, projectID uuid.UUID, input domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}
