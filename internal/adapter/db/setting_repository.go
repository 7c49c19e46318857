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

const settingColumns = `id, name, value, type, category, description, created_at, updated_at`

type SettingRepository struct {
	db *sqlx.DB
}

type settingRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Value       string         `db:"value"`
	Type        string         `db:"type"`
	Category    string         `db:"category"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.SettingRepository = (*SettingRepository)(nil)

func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Insert(ctx context.Context, setting domain.SystemSetting) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO system_settings (id, name, value, type, category, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		setting.ID, setting.Name, setting.Value, setting.Type, setting.Category, setting.Description,
		setting.CreatedAt, setting.UpdatedAt,
	)
	if isDuplicate(err) {
		return domain.ErrSettingNameTaken
	}
	return err
}

func (r *SettingRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.SystemSetting, error) {
	var row settingRow
	err := r.db.GetContext(ctx, &row, `SELECT `+settingColumns+` FROM system_settings WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SystemSetting{}, domain.ErrSettingNotFound
	}
	if err != nil {
		return domain.SystemSetting{}, err
	}
	return mapSettingRowToDomainSetting(row), nil
}

func (r *SettingRepository) GetByName(ctx context.Context, name string) (domain.SystemSetting, error) {
	var row settingRow
	err := r.db.GetContext(ctx, &row, `SELECT `+settingColumns+` FROM system_settings WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SystemSetting{}, domain.ErrSettingNotFound
	}
	if err != nil {
		return domain.SystemSetting{}, err
	}
	return mapSettingRowToDomainSetting(row), nil
}

var settingSortColumns = map[string]string{
	"name":       "name",
	"category":   "category",
	"type":       "type",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *SettingRepository) ListPaged(ctx context.Context, filter domain.SettingListFilter) ([]domain.SystemSetting, int, error) {
	where := ""
	args := []any{}
	if filter.Category != nil {
		where += " AND category = ?"
		args = append(args, *filter.Category)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM system_settings WHERE 1=1`+where, args...); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := settingSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "name"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	var rows []settingRow
	query := fmt.Sprintf(`SELECT %s FROM system_settings WHERE 1=1%s ORDER BY %s %s LIMIT ? OFFSET ?`,
		settingColumns, where, sortColumn, direction)
	args = append(args, filter.PerPage, paginator.Offset(filter.Page, filter.PerPage))
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	settings := make([]domain.SystemSetting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, mapSettingRowToDomainSetting(row))
	}
	return settings, total, nil
}

func (r *SettingRepository) Update(ctx context.Context, setting domain.SystemSetting) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE system_settings SET value = ?, category = ?, description = ?, updated_at = ?
WHERE id = ?`,
		setting.Value, setting.Category, setting.Description, time.Now().UTC(), setting.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrSettingNotFound)
}

func (r *SettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM system_settings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrSettingNotFound)
}

func mapSettingRowToDomainSetting(row settingRow) domain.SystemSetting {
	setting := domain.SystemSetting{
		ID:        row.ID,
		Name:      row.Name,
		Value:     row.Value,
		Type:      domain.SettingType(row.Type),
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		setting.Description = &value
	}
	return setting
}
