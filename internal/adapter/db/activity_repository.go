package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
)

type ActivityRepository struct {
	db *sqlx.DB
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, activity domain.UserActivity) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_activities (id, user_id, activity_type, description, created_at)
VALUES (?, ?, ?, ?, ?)`,
		activity.ID, activity.UserID, activity.Type, activity.Description, activity.CreatedAt,
	)
	return err
}

func (r *ActivityRepository) CountByDay(ctx context.Context, since time.Time) ([]domain.ActivityBucket, error) {
	var rows []struct {
		Date  string `db:"activity_date"`
		Count int    `db:"activity_count"`
	}
	err := r.db.SelectContext(ctx, &rows, `
SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS activity_date, COUNT(*) AS activity_count
FROM user_activities
WHERE created_at >= ?
GROUP BY activity_date
ORDER BY activity_date`,
		since,
	)
	if err != nil {
		return nil, err
	}

	buckets := make([]domain.ActivityBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.ActivityBucket{Date: row.Date, Count: row.Count})
	}
	return buckets, nil
}
