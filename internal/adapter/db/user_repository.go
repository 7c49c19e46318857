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

const userColumns = `id, email, name, password_hash, role, status, language, last_login, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	Name         sql.NullString `db:"name"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Status       string         `db:"status"`
	Language     string         `db:"language"`
	LastLogin    sql.NullTime   `db:"last_login"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, email, name, password_hash, role, status, language, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.Status, user.Language,
		user.CreatedAt, user.UpdatedAt,
	)
	if isDuplicate(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY created_at`); err != nil {
		return nil, err
	}
	return mapUserRowsToDomainUsers(rows), nil
}

var userSortColumns = map[string]string{
	"email":      "email",
	"name":       "name",
	"status":     "status",
	"role":       "role",
	"last_login": "last_login",
	"created_at": "created_at",
}

func (r *UserRepository) ListPaged(ctx context.Context, filter domain.UserListFilter) ([]domain.User, int, error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		where += " AND status = ?"
		args = append(args, *filter.Status)
	}
	if filter.Role != nil {
		where += " AND role = ?"
		args = append(args, *filter.Role)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users WHERE 1=1`+where, args...); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := userSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	var rows []userRow
	query := fmt.Sprintf(`SELECT %s FROM users WHERE 1=1%s ORDER BY %s %s LIMIT ? OFFSET ?`,
		userColumns, where, sortColumn, direction)
	args = append(args, filter.PerPage, paginator.Offset(filter.Page, filter.PerPage))
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return mapUserRowsToDomainUsers(rows), total, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE users SET email = ?, name = ?, password_hash = ?, role = ?, status = ?, language = ?, updated_at = ?
WHERE id = ?`,
		user.Email, user.Name, user.PasswordHash, user.Role, user.Status, user.Language, time.Now().UTC(),
		user.ID,
	)
	if isDuplicate(err) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, at, id)
	return err
}

func requireAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.SystemRole(row.Role),
		Status:       domain.UserStatus(row.Status),
		Language:     row.Language,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.Name.Valid {
		value := row.Name.String
		user.Name = &value
	}
	if row.LastLogin.Valid {
		value := row.LastLogin.Time
		user.LastLogin = &value
	}
	return user
}

func mapUserRowsToDomainUsers(rows []userRow) []domain.User {
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users
}
