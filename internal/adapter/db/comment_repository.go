package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
)

const commentColumns = `c.id, c.text_content, c.author_id, c.project_id, c.task_id, c.parent_comment_id,
	c.created_at, c.updated_at`

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uuid.UUID     `db:"id"`
	Text      string        `db:"text_content"`
	AuthorID  uuid.UUID     `db:"author_id"`
	ProjectID uuid.NullUUID `db:"project_id"`
	TaskID    uuid.NullUUID `db:"task_id"`
	ParentID  uuid.NullUUID `db:"parent_comment_id"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	var projectID, taskID *uuid.UUID
	switch comment.Anchor.Kind {
	case domain.AnchorProject:
		id := comment.Anchor.ID
		projectID = &id
	case domain.AnchorTask:
		id := comment.Anchor.ID
		taskID = &id
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO comments (id, text_content, author_id, project_id, task_id, parent_comment_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		comment.ID, comment.Text, comment.AuthorID, projectID, taskID, comment.ParentID,
		comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.GetByID(ctx, comment.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Comment, error) {
	var row commentRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+commentColumns+` FROM comments c WHERE c.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}

	comments := []domain.Comment{mapCommentRowToDomainComment(row)}
	if err = r.attachAuthors(ctx, comments); err != nil {
		return domain.Comment{}, err
	}
	return comments[0], nil
}

func (r *CommentRepository) ListForAnchor(ctx context.Context, anchor domain.CommentAnchor) ([]domain.Comment, error) {
	anchorColumn := "c.project_id"
	if anchor.Kind == domain.AnchorTask {
		anchorColumn = "c.task_id"
	}

	var topRows []commentRow
	err := r.db.SelectContext(ctx, &topRows, `
SELECT `+commentColumns+`
FROM comments c
WHERE `+anchorColumn+` = ? AND c.parent_comment_id IS NULL
ORDER BY c.created_at`, anchor.ID)
	if err != nil {
		return nil, err
	}
	if len(topRows) == 0 {
		return []domain.Comment{}, nil
	}

	topIDs := make([]uuid.UUID, 0, len(topRows))
	for _, row := range topRows {
		topIDs = append(topIDs, row.ID)
	}

	query, args, err := sqlx.In(`
SELECT `+commentColumns+`
FROM comments c
WHERE c.parent_comment_id IN (?)
ORDER BY c.created_at`, topIDs)
	if err != nil {
		return nil, err
	}
	var replyRows []commentRow
	if err = r.db.SelectContext(ctx, &replyRows, query, args...); err != nil {
		return nil, err
	}

	repliesByParent := make(map[uuid.UUID][]domain.Comment)
	for _, row := range replyRows {
		reply := mapCommentRowToDomainComment(row)
		repliesByParent[*reply.ParentID] = append(repliesByParent[*reply.ParentID], reply)
	}

	comments := make([]domain.Comment, 0, len(topRows))
	for _, row := range topRows {
		comment := mapCommentRowToDomainComment(row)
		comment.Replies = repliesByParent[comment.ID]
		comments = append(comments, comment)
	}
	if err = r.attachAuthors(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment domain.Comment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET text_content = ?, updated_at = ? WHERE id = ?`,
		comment.Text, time.Now().UTC(), comment.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, domain.ErrCommentNotFound)
}

// Delete walks the reply tree breadth-first inside one transaction and
// removes every collected id, deepest level first.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	levels := [][]uuid.UUID{{id}}
	frontier := []uuid.UUID{id}
	for len(frontier) > 0 {
		query, args, inErr := sqlx.In(`SELECT id FROM comments WHERE parent_comment_id IN (?)`, frontier)
		if inErr != nil {
			return inErr
		}
		var children []uuid.UUID
		if err = tx.SelectContext(ctx, &children, query, args...); err != nil {
			return err
		}
		if len(children) > 0 {
			levels = append(levels, children)
		}
		frontier = children
	}

	for i := len(levels) - 1; i >= 0; i-- {
		query, args, inErr := sqlx.In(`DELETE FROM comments WHERE id IN (?)`, levels[i])
		if inErr != nil {
			return inErr
		}
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		if i == 0 {
			if err = requireAffected(res, domain.ErrCommentNotFound); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (r *CommentRepository) attachAuthors(ctx context.Context, comments []domain.Comment) error {
	authorIDs := collectAuthorIDs(comments, nil)
	if len(authorIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE id IN (?)`, authorIDs)
	if err != nil {
		return err
	}
	var rows []userRow
	if err = r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return err
	}
	authors := make(map[uuid.UUID]domain.User, len(rows))
	for _, row := range rows {
		authors[row.ID] = mapUserRowToDomainUser(row)
	}

	setAuthors(comments, authors)
	return nil
}

func collectAuthorIDs(comments []domain.Comment, ids []uuid.UUID) []uuid.UUID {
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
		ids = collectAuthorIDs(c.Replies, ids)
	}
	return ids
}

func setAuthors(comments []domain.Comment, authors map[uuid.UUID]domain.User) {
	for i := range comments {
		if author, ok := authors[comments[i].AuthorID]; ok {
			authorCopy := author
			comments[i].Author = &authorCopy
		}
		setAuthors(comments[i].Replies, authors)
	}
}

func mapCommentRowToDomainComment(row commentRow) domain.Comment {
	comment := domain.Comment{
		ID:        row.ID,
		Text:      row.Text,
		AuthorID:  row.AuthorID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	switch {
	case row.ProjectID.Valid:
		comment.Anchor = domain.ProjectAnchor(row.ProjectID.UUID)
	case row.TaskID.Valid:
		comment.Anchor = domain.TaskAnchor(row.TaskID.UUID)
	}
	if row.ParentID.Valid {
		value := row.ParentID.UUID
		comment.ParentID = &value
	}
	return comment
}
