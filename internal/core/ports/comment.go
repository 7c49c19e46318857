package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Comment, error)
	// ListForAnchor returns the anchor's top-level comments with their
	// reply subtrees and every author loaded (two queries, no N+1).
	ListForAnchor(ctx context.Context, anchor domain.CommentAnchor) ([]domain.Comment, error)
	Update(ctx context.Context, comment domain.Comment) error
	// Delete removes the comment and every descendant reply.
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentService interface {
	ListForAnchor(ctx context.Context, userID uuid.UUID, anchor domain.CommentAnchor) ([]domain.Comment, error)
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateCommentInput) (domain.Comment, error)
	Get(ctx context.Context, userID, commentID uuid.UUID) (domain.Comment, error)
	Update(ctx context.Context, userID, commentID uuid.UUID, input domain.UpdateCommentInput) (domain.Comment, error)
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}
