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

const projectColumns = `id, name, description, status, priority, progress, start_date, end_date,
	parent_id, owner_id, created_by, updated_by, created_at, updated_at, deleted_at`

const projectColumnsP = `p.id, p.name, p.description, p.status, p.priority, p.progress, p.start_date, p.end_date,
	p.parent_id, p.owner_id, p.created_by, p.updated_by, p.created_at, p.updated_at, p.deleted_at`

const userColumnsU = `u.id, u.email, u.name, u.password_hash, u.role, u.status, u.language, u.last_login,
	u.created_at, u.updated_at`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	Progress    int            `db:"progress"`
	StartDate   sql.NullTime   `db:"start_date"`
	EndDate     sql.NullTime   `db:"end_date"`
	ParentID    uuid.NullUUID  `db:"parent_id"`
	OwnerID     uuid.UUID      `db:"owner_id"`
	CreatedBy   uuid.UUID      `db:"created_by"`
	UpdatedBy   uuid.NullUUID  `db:"updated_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}

type projectMemberRow struct {
	ProjectID uuid.UUID `db:"project_id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      string    `db:"role_in_project"`
	AddedAt   time.Time `db:"added_at"`
	userRow
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project domain.Project, memberIDs []uuid.UUID) (domain.Project, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Project{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO projects (id, name, description, status, priority, progress, start_date, end_date,
	parent_id, owner_id, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Description, project.Status, project.Priority, project.Progress,
		project.StartDate, project.EndDate, project.ParentID, project.OwnerID, project.CreatedByID,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, err
	}

	if err = replaceMembers(ctx, tx, project.ID, project.OwnerID, memberIDs, project.CreatedAt); err != nil {
		return domain.Project{}, err
	}
	if err = tx.Commit(); err != nil {
		return domain.Project{}, err
	}
	return r.GetByID(ctx, project.ID)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+projectColumns+` FROM projects WHERE id = ? AND deleted_at IS NULL`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}

	projects := []domain.Project{mapProjectRowToDomainProject(row)}
	if err = r.attachRelations(ctx, projects); err != nil {
		return domain.Project{}, err
	}
	return projects[0], nil
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	var rows []projectRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT `+projectColumnsP+`
FROM projects p
JOIN project_members m ON m.project_id = p.id
WHERE m.user_id = ? AND p.deleted_at IS NULL
ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	projects := mapProjectRowsToDomainProjects(rows)
	if err = r.attachRelations(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project, members *[]uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
UPDATE projects SET name = ?, description = ?, status = ?, priority = ?, progress = ?,
	start_date = ?, end_date = ?, parent_id = ?, updated_by = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL`,
		project.Name, project.Description, project.Status, project.Priority, project.Progress,
		project.StartDate, project.EndDate, project.ParentID, project.UpdatedByID, now,
		project.ID,
	)
	if err != nil {
		return err
	}
	if err = requireAffected(res, domain.ErrProjectNotFound); err != nil {
		return err
	}

	if members != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, project.ID); err != nil {
			return err
		}
		if err = replaceMembers(ctx, tx, project.ID, project.OwnerID, *members, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *ProjectRepository) SoftDelete(ctx context.Context, id, byUserID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE projects SET deleted_at = ?, updated_by = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC(), byUserID, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) ParentOf(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	var parentID uuid.NullUUID
	err := r.db.GetContext(ctx, &parentID,
		`SELECT parent_id FROM projects WHERE id = ? AND deleted_at IS NULL`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if !parentID.Valid {
		return nil, nil
	}
	value := parentID.UUID
	return &value, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM projects WHERE id = ? AND deleted_at IS NULL`, id)
	return count > 0, err
}

func (r *ProjectRepository) MemberRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error) {
	var role string
	err := r.db.GetContext(ctx, &role,
		`SELECT role_in_project FROM project_members WHERE project_id = ? AND user_id = ?`, projectID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return domain.ProjectRole(role), true, nil
}

func (r *ProjectRepository) ListMembers(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	var rows []projectMemberRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT m.project_id, m.user_id, m.role_in_project, m.added_at, `+userColumnsU+`
FROM project_members m
JOIN users u ON u.id = m.user_id
WHERE m.project_id = ?
ORDER BY m.added_at`, projectID)
	if err != nil {
		return nil, err
	}
	return mapMemberRowsToDomainMembers(rows), nil
}

func (r *ProjectRepository) UpsertMember(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO project_members (project_id, user_id, role_in_project, added_at)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE role_in_project = ?`,
		projectID, userID, role, time.Now().UTC(), role,
	)
	return err
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM project_members WHERE project_id = ? AND user_id = ?`, projectID, userID)
	return err
}

var projectSortColumns = map[string]string{
	"name":       "name",
	"status":     "status",
	"priority":   "priority",
	"progress":   "progress",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *ProjectRepository) ListAll(ctx context.Context, filter domain.ProjectListFilter) ([]domain.Project, int, error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		where += " AND status = ?"
		args = append(args, *filter.Status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM projects WHERE 1=1`+where, args...); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := projectSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	var rows []projectRow
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE 1=1%s ORDER BY %s %s LIMIT ? OFFSET ?`,
		projectColumns, where, sortColumn, direction)
	args = append(args, filter.PerPage, paginator.Offset(filter.Page, filter.PerPage))
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	projects := mapProjectRowsToDomainProjects(rows)
	if err := r.attachRelations(ctx, projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// replaceMembers writes the membership rows for a project: the owner as
// editor plus every other resolvable user id as viewer. Unknown ids are
// skipped silently because the INSERT selects from users.
func replaceMembers(ctx context.Context, tx *sqlx.Tx, projectID, ownerID uuid.UUID, memberIDs []uuid.UUID, at time.Time) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO project_members (project_id, user_id, role_in_project, added_at)
VALUES (?, ?, 'editor', ?)`,
		projectID, ownerID, at,
	)
	if err != nil {
		return err
	}
	if len(memberIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
INSERT INTO project_members (project_id, user_id, role_in_project, added_at)
SELECT ?, id, 'viewer', ? FROM users WHERE id IN (?) AND id <> ?`,
		projectID, at, memberIDs, ownerID,
	)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

// attachRelations eager-loads owners and member lists for the given
// projects with two batched queries.
func (r *ProjectRepository) attachRelations(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	ownerIDs := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
		ownerIDs = append(ownerIDs, p.OwnerID)
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

	query, args, err = sqlx.In(`
SELECT m.project_id, m.user_id, m.role_in_project, m.added_at, `+userColumnsU+`
FROM project_members m
JOIN users u ON u.id = m.user_id
WHERE m.project_id IN (?)
ORDER BY m.added_at`, projectIDs)
	if err != nil {
		return err
	}
	var memberRows []projectMemberRow
	if err = r.db.SelectContext(ctx, &memberRows, query, args...); err != nil {
		return err
	}
	membersByProject := make(map[uuid.UUID][]domain.ProjectMember, len(projects))
	for _, row := range memberRows {
		membersByProject[row.ProjectID] = append(membersByProject[row.ProjectID], mapMemberRowToDomainMember(row))
	}

	for i := range projects {
		if owner, ok := owners[projects[i].OwnerID]; ok {
			ownerCopy := owner
			projects[i].Owner = &ownerCopy
		}
		projects[i].Members = membersByProject[projects[i].ID]
	}
	return nil
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		Status:      domain.ProjectStatus(row.Status),
		Priority:    domain.ProjectPriority(row.Priority),
		Progress:    row.Progress,
		OwnerID:     row.OwnerID,
		CreatedByID: row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		project.StartDate = &value
	}
	if row.EndDate.Valid {
		value := row.EndDate.Time
		project.EndDate = &value
	}
	if row.ParentID.Valid {
		value := row.ParentID.UUID
		project.ParentID = &value
	}
	if row.UpdatedBy.Valid {
		value := row.UpdatedBy.UUID
		project.UpdatedByID = &value
	}
	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		project.DeletedAt = &value
	}
	return project
}

func mapProjectRowsToDomainProjects(rows []projectRow) []domain.Project {
	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}
	return projects
}

func mapMemberRowToDomainMember(row projectMemberRow) domain.ProjectMember {
	user := mapUserRowToDomainUser(row.userRow)
	return domain.ProjectMember{
		ProjectID: row.ProjectID,
		UserID:    row.UserID,
		Role:      domain.ProjectRole(row.Role),
		AddedAt:   row.AddedAt,
		User:      &user,
	}
}

func mapMemberRowsToDomainMembers(rows []projectMemberRow) []domain.ProjectMember {
	members := make([]domain.ProjectMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, mapMemberRowToDomainMember(row))
	}
	return members
}
