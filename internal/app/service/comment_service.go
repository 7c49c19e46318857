package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
)

// CommentService anchors every comment to exactly one project or task
// and inherits visibility from the project behind that anchor.
type CommentService struct {
	commentRepository ports.CommentRepository
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
	projectService    ports.ProjectService
}

var _ ports.CommentService = (*CommentService)(nil)

func NewCommentService(commentRepository ports.CommentRepository, taskRepository ports.TaskRepository, projectRepository ports.ProjectRepository, projectService ports.ProjectService) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
		projectService:    projectService,
	}
}

func (s *CommentService) ListForAnchor(ctx context.Context, userID uuid.UUID, anchor domain.CommentAnchor) ([]domain.Comment, error) {
	if _, _, err := s.anchorAccess(ctx, userID, anchor); err != nil {
		return nil, err
	}
	return s.commentRepository.ListForAnchor(ctx, anchor)
}

func (s *CommentService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateCommentInput) (domain.Comment, error) {
	if input.Anchor.Kind != domain.AnchorProject && input.Anchor.Kind != domain.AnchorTask {
		return domain.Comment{}, domain.ErrInvalidAnchor
	}
	if _, _, err := s.anchorAccess(ctx, userID, input.Anchor); err != nil {
		return domain.Comment{}, err
	}
	if input.ParentID != nil {
		if _, err := s.commentRepository.GetByID(ctx, *input.ParentID); err != nil {
			return domain.Comment{}, err
		}
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		ID:        uuid.New(),
		Text:      input.Text,
		AuthorID:  userID,
		Anchor:    input.Anchor,
		ParentID:  input.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.commentRepository.Create(ctx, comment)
}

func (s *CommentService) Get(ctx context.Context, userID, commentID uuid.UUID) (domain.Comment, error) {
	comment, err := s.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if _, _, err = s.anchorAccess(ctx, userID, comment.Anchor); err != nil {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, userID, commentID uuid.UUID, input domain.UpdateCommentInput) (domain.Comment, error) {
	comment, err := s.Get(ctx, userID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.AuthorID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}

	comment.Text = input.Text
	if err = s.commentRepository.Update(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepository.GetByID(ctx, commentID)
}

// Delete allows the author, the owner of the resolved project, and
// for task comments the task's owner, to remove a comment and its
// reply subtree.
func (s *CommentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	access, taskOwnerID, err := s.anchorAccess(ctx, userID, comment.Anchor)
	if err != nil {
		return domain.ErrCommentNotFound
	}
	if comment.AuthorID != userID && access != domain.AccessOwner && userID != taskOwnerID {
		return domain.ErrForbidden
	}
	return s.commentRepository.Delete(ctx, commentID)
}

// anchorAccess resolves the project behind the anchor and returns the
// caller's level on it. For task anchors it also returns the task's
// owner, who may moderate the task's comments; the owner id is
// uuid.Nil for project anchors. An unreadable anchor comes back as
// not found.
func (s *CommentService) anchorAccess(ctx context.Context, userID uuid.UUID, anchor domain.CommentAnchor) (domain.AccessLevel, uuid.UUID, error) {
	projectID := anchor.ID
	taskOwnerID := uuid.Nil
	if anchor.Kind == domain.AnchorTask {
		task, err := s.taskRepository.GetByID(ctx, anchor.ID)
		if err != nil {
			return domain.AccessNone, uuid.Nil, err
		}
		projectID = task.ProjectID
		taskOwnerID = task.OwnerID
	}

	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.AccessNone, uuid.Nil, err
	}
	access, err := s.projectService.Access(ctx, userID, project)
	if err != nil {
		return domain.AccessNone, uuid.Nil, err
	}
	if !access.CanRead() {
		if anchor.Kind == domain.AnchorTask {
			return domain.AccessNone, uuid.Nil, domain.ErrTaskNotFound
		}
		return domain.AccessNone, uuid.Nil, domain.ErrProjectNotFound
	}
	return access, taskOwnerID, nil
}
