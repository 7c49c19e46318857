package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/paginator"
)

const taskColumns = `id, title, description, status, priority, task_type, due_date, start_date, end_date,
	duration_minutes, project_id, owner_id, created_at, updated_at`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID              uuid.UUID      `db:"id"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	Status          string         `db:"status"`
	Priority        string         `db:"priority"`
	TaskType        string         `db:"task_type"`
	DueDate         sql.NullTime   `db:"due_date"`
	StartDate       sql.NullTime   `db:"start_date"`
	EndDate         sql.NullTime   `db:"end_date"`
	DurationMinutes sql.NullInt64  `db:"duration_minutes"`
	ProjectID       uuid.UUID      `db:"project_id"`
	OwnerID         uuid.UUID      `db:"owner_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type taskAssigneeRow struct {
	TaskID uuid.UUID `db:"task_id"`
	userRow
}

type taskEdgeRow struct {
	TaskID uuid.UUID `db:"task_id"`
	Type   string    `db:"dependency_type"`
	DepID  uuid.UUID `db:"dep_id"`
	Title  string    `db:"dep_title"`
	Status string    `db:"dep_status"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task, assigneeIDs, dependsOnIDs []uuid.UUID, depType domain.DependencyType) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO tasks (id, title, description, status, priority, task_type, due_date, start_date, end_date,
	duration_minutes, project_id, owner_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, task.Status, task.Priority, task.Type,
		task.DueDate, task.StartDate, task.EndDate, task.DurationMinutes,
		task.ProjectID, task.OwnerID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	if err = insertAssignees(ctx, tx, task.ID, assigneeIDs); err != nil {
		return domain.Task{}, err
	}
	if err = insertEdges(ctx, tx, task.ID, dependsOnIDs, depType); err != nil {
		return domain.Task{}, err
	}
	if err = tx.Commit(); err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, task.ID)
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	tasks := []domain.Task{mapTaskRowToDomainTask(row)}
	if err = r.attachTaskRelations(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at`, projectID)
	if err != nil {
		return nil, err
	}

	tasks := mapTaskRowsToDomainTasks(rows)
	if err = r.attachTaskRelations(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task, assigneeIDs, dependsOnIDs *[]uuid.UUID, depType domain.DependencyType) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?, task_type = ?,
	due_date = ?, start_date = ?, end_date = ?, duration_minutes = ?, updated_at = ?
WHERE id = ?`,
		task.Title, task.Description, task.Status, task.Priority, task.Type,
		task.DueDate, task.StartDate, task.EndDate, task.DurationMinutes, time.Now().UTC(),
		task.ID,
	)
	if err != nil {
		return err
	}
	if err = requireAffected(res, domain.ErrTaskNotFound); err != nil {
		return err
	}

	if assigneeIDs != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = ?`, task.ID); err != nil {
			return err
		}
		if err = insertAssignees(ctx, tx, task.ID, *assigneeIDs); err != nil {
			return err
		}
	}
	if dependsOnIDs != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM task_dependencies WHERE task_id = ?`, task.ID); err != nil {
			return err
		}
		if err = insertEdges(ctx, tx, task.ID, *dependsOnIDs, depType); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM task_dependencies WHERE task_id = ? OR depends_on_task_id = ?`, id, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err = requireAffected(res, domain.ErrTaskNotFound); err != nil {
		return err
	}
	return tx.Commit()
}

var taskSortColumns = map[string]string{
	"title":      "title",
	"status":     "status",
	"priority":   "priority",
	"due_date":   "due_date",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *TaskRepository) ListAll(ctx context.Context, filter domain.TaskListFilter) ([]domain.Task, int, error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		where += " AND status = ?"
		args = append(args, *filter.Status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM tasks WHERE 1=1`+where, args...); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := taskSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	var rows []taskRow
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE 1=1%s ORDER BY %s %s LIMIT ? OFFSET ?`,
		taskColumns, where, sortColumn, direction)
	args = append(args, filter.PerPage, paginator.Offset(filter.Page, filter.PerPage))
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	tasks := mapTaskRowsToDomainTasks(rows)
	if err := r.attachTaskRelations(ctx, tasks); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// insertAssignees links the task to every id that resolves to an active
// user; inactive, pending and unknown ids are dropped silently.
func insertAssignees(ctx context.Context, tx *sqlx.Tx, taskID uuid.UUID, assigneeIDs []uuid.UUID) error {
	if len(assigneeIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`
INSERT INTO task_assignees (task_id, user_id)
SELECT ?, id FROM users WHERE id IN (?) AND status = 'active'`,
		taskID, assigneeIDs,
	)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// insertEdges creates one outgoing edge per resolvable target task, all
// with the same dependency type. Unknown targets are skipped because
// the INSERT selects from tasks; a task may depend on itself.
func insertEdges(ctx context.Context, tx *sqlx.Tx, taskID uuid.UUID, dependsOnIDs []uuid.UUID, depType domain.DependencyType) error {
	if len(dependsOnIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`
INSERT INTO task_dependencies (task_id, depends_on_task_id, dependency_type)
SELECT ?, id, ? FROM tasks WHERE id IN (?)`,
		taskID, depType, dependsOnIDs,
	)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// attachTaskRelations eager-loads owners, project refs, assignees and
// outgoing dependency edges with batched queries.
func (r *TaskRepository) attachTaskRelations(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	taskIDs := make([]uuid.UUID, 0, len(tasks))
	ownerIDs := make([]uuid.UUID, 0, len(tasks))
	projectIDs := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
		ownerIDs = append(ownerIDs, t.OwnerID)
		projectIDs = append(projectIDs, t.ProjectID)
	}

	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE id IN (?)`, ownerIDs)
	if err != nil {
		return err
	}
	var ownerRows []userRow
	if err = r.db.SelectContext(ctx, &ownerRows, query, args...); err != nil {
		return err
	}
	owners := make(map[uuid.UUID]domain.User, len(ownerRows))
	for _, row := range ownerRows {
		owners[row.ID] = mapUserRowToDomainUser(row)
	}

	query, args, err = sqlx.In(`SELECT id, name FROM projects WHERE id IN (?)`, projectIDs)
	if err != nil {
		return err
	}
	var projectRefRows []struct {
		ID   uuid.UUID `db:"id"`
		Name string    `db:"name"`
	}
	if err = r.db.SelectContext(ctx, &projectRefRows, query, args...); err != nil {
		return err
	}
	projectRefs := make(map[uuid.UUID]domain.ProjectRef, len(projectRefRows))
	for _, row := range projectRefRows {
		projectRefs[row.ID] = domain.ProjectRef{ID: row.ID, Name: row.Name}
	}

	query, args, err = sqlx.In(`
SELECT a.task_id, `+userColumnsU+`
FROM task_assignees a
JOIN users u ON u.id = a.user_id
WHERE a.task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	var assigneeRows []taskAssigneeRow
	if err = r.db.SelectContext(ctx, &assigneeRows, query, args...); err != nil {
		return err
	}
	assigneesByTask := make(map[uuid.UUID][]domain.User)
	for _, row := range assigneeRows {
		assigneesByTask[row.TaskID] = append(assigneesByTask[row.TaskID], mapUserRowToDomainUser(row.userRow))
	}

	query, args, err = sqlx.In(`
SELECT d.task_id, d.dependency_type, t.id AS dep_id, t.title AS dep_title, t.status AS dep_status
FROM task_dependencies d
JOIN tasks t ON t.id = d.depends_on_task_id
WHERE d.task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	var edgeRows []taskEdgeRow
	if err = r.db.SelectContext(ctx, &edgeRows, query, args...); err != nil {
		return err
	}
	edgesByTask := make(map[uuid.UUID][]domain.TaskDependency)
	for _, row := range edgeRows {
		edgesByTask[row.TaskID] = append(edgesByTask[row.TaskID], domain.TaskDependency{
			DependsOn: domain.TaskRef{ID: row.DepID, Title: row.Title, Status: domain.TaskStatus(row.Status)},
			Type:      domain.DependencyType(row.Type),
		})
	}

	for i := range tasks {
		if owner, ok := owners[tasks[i].OwnerID]; ok {
			ownerCopy := owner
			tasks[i].Owner = &ownerCopy
		}
		if ref, ok := projectRefs[tasks[i].ProjectID]; ok {
			refCopy := ref
			tasks[i].Project = &refCopy
		}
		tasks[i].Assignees = assigneesByTask[tasks[i].ID]
		tasks[i].Dependencies = edgesByTask[tasks[i].ID]
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		Type:      domain.TaskType(row.TaskType),
		ProjectID: row.ProjectID,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		task.StartDate = &value
	}
	if row.EndDate.Valid {
		value := row.EndDate.Time
		task.EndDate = &value
	}
	if row.DurationMinutes.Valid {
		value := int(row.DurationMinutes.Int64)
		task.DurationMinutes = &value
	}
	return task
}

func mapTaskRowsToDomainTasks(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}
