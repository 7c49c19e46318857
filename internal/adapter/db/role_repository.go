package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
)

const roleColumns = `r.id, r.name, r.description, r.permissions, r.created_at, r.updated_at`

type RoleRepository struct {
	db *sqlx.DB
}

type roleRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Permissions []byte         `db:"permissions"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	UserCount   int            `db:"user_count"`
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Insert(ctx context.Context, role domain.Role) error {
	permissions, err := json.Marshal(permissionsOrEmpty(role.Permissions))
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO user_roles (id, name, description, permissions, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		role.ID, role.Name, role.Description, permissions, role.CreatedAt, role.UpdatedAt,
	)
	if isDuplicate(err) {
		return domain.ErrRoleNameTaken
	}
	return err
}

func (r *RoleRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Role, error) {
	var row roleRow
	err := r.db.GetContext(ctx, &row, `
SELECT `+roleColumns+`, (SELECT COUNT(*) FROM users u WHERE u.role = r.name) AS user_count
FROM user_roles r WHERE r.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Role{}, domain.ErrRoleNotFound
	}
	if err != nil {
		return domain.Role{}, err
	}
	return mapRoleRowToDomainRole(row)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (domain.Role, error) {
	var row roleRow
	err := r.db.GetContext(ctx, &row, `
SELECT `+roleColumns+`, (SELECT COUNT(*) FROM users u WHERE u.role = r.name) AS user_count
FROM user_roles r WHERE r.name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Role{}, domain.ErrRoleNotFound
	}
	if err != nil {
		return domain.Role{}, err
	}
	return mapRoleRowToDomainRole(row)
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	var rows []roleRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT `+roleColumns+`, (SELECT COUNT(*) FROM users u WHERE u.role = r.name) AS user_count
FROM user_roles r ORDER BY r.name`)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		role, mapErr := mapRoleRowToDomainRole(row)
		if mapErr != nil {
			return nil, mapErr
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *RoleRepository) Update(ctx context.Context, role domain.Role) error {
	permissions, err := json.Marshal(permissionsOrEmpty(role.Permissions))
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE user_roles SET name = ?, description = ?, permissions = ?, updated_at = ?
WHERE id = ?`,
		role.Name, role.Description, permissions, time.Now().UTC(), role.ID,
	)
	if isDuplicate(err) {
		return domain.ErrRoleNameTaken
	}
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrRoleNotFound)
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_roles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrRoleNotFound)
}

func permissionsOrEmpty(permissions []string) []string {
	if permissions == nil {
		return []string{}
	}
	return permissions
}

func mapRoleRowToDomainRole(row roleRow) (domain.Role, error) {
	role := domain.Role{
		ID:        row.ID,
		Name:      row.Name,
		UserCount: row.UserCount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		role.Description = &value
	}
	if err := json.Unmarshal(row.Permissions, &role.Permissions); err != nil {
		return domain.Role{}, err
	}
	return role, nil
}
