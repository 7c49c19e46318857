package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/mapper"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListProjectComments(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID, ok := parseIDParam(c, "projectId", lang)
	if !ok {
		return
	}
	h.listForAnchor(c, lang, domain.ProjectAnchor(projectID))
}

func (h *CommentHandler) ListTaskComments(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "taskId", lang)
	if !ok {
		return
	}
	h.listForAnchor(c, lang, domain.TaskAnchor(taskID))
}

func (h *CommentHandler) listForAnchor(c *gin.Context, lang string, anchor domain.CommentAnchor) {
	userID := middleware.GetUserID(c)

	comments, err := h.commentService.ListForAnchor(c.Request.Context(), userID, anchor)
	if err != nil {
		if h.respondAnchorNotFound(c, lang, err) {
			return
		}

		zap.L().Error("failed to list comments", zap.String("anchor_id", anchor.ID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListComments, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) CreateProjectComment(c *gin.Context) {
	lang := middleware.GetLang(c)

	projectID, ok := parseIDParam(c, "projectId", lang)
	if !ok {
		return
	}
	h.create(c, lang, domain.ProjectAnchor(projectID))
}

func (h *CommentHandler) CreateTaskComment(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "taskId", lang)
	if !ok {
		return
	}
	h.create(c, lang, domain.TaskAnchor(taskID))
}

func (h *CommentHandler) create(c *gin.Context, lang string, anchor domain.CommentAnchor) {
	userID := middleware.GetUserID(c)

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidCommentPayload, lang),
		)
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		parsed, err := uuid.Parse(*req.ParentID)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidID, lang),
			)
			return
		}
		parentID = &parsed
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, domain.CreateCommentInput{
		Text:     req.Text,
		Anchor:   anchor,
		ParentID: parentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAnchor) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidCommentAnchor, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgCommentNotFound, lang),
			)
			return
		}
		if h.respondAnchorNotFound(c, lang, err) {
			return
		}

		zap.L().Error("failed to create comment", zap.String("anchor_id", anchor.ID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailCreateComment, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	commentID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), userID, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgCommentNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load comment", zap.String("comment_id", commentID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	commentID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidCommentPayload, lang),
		)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), userID, commentID, domain.UpdateCommentInput{Text: req.Text})
	if err != nil {
		h.respondCommentMutationError(c, lang, commentID, "update", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	commentID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		h.respondCommentMutationError(c, lang, commentID, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) respondCommentMutationError(c *gin.Context, lang string, commentID uuid.UUID, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrCommentNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgCommentNotFound, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(apierrors.CodeForbidden, apierrors.MsgForbidden, lang),
		)
	default:
		zap.L().Error("failed to "+action+" comment", zap.String("comment_id", commentID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
	}
}

// respondAnchorNotFound reports whether err was one of the anchor
// not-found cases and, if so, has written the response.
func (h *CommentHandler) respondAnchorNotFound(c *gin.Context, lang string, err error) bool {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgProjectNotFound, lang),
		)
		return true
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return true
	}
	return false
}
