package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/mapper"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/validation"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projects, err := h.projectService.List(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list projects", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateProjectInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projectID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load project", zap.String("project_id", projectID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projectID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), userID, projectID, input)
	if err != nil {
		h.respondProjectMutationError(c, lang, projectID, "update", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projectID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), userID, projectID); err != nil {
		h.respondProjectMutationError(c, lang, projectID, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListMembers(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projectID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	members, err := h.projectService.Members(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list project members", zap.String("project_id", projectID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListMembers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToMemberItems(members))
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projectID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidID, lang),
		)
		return
	}

	role := domain.ProjectRoleViewer
	if req.Role != nil {
		role = domain.ProjectRole(*req.Role)
	}

	project, err := h.projectService.AddMember(c.Request.Context(), userID, projectID, memberID, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}
		h.respondProjectMutationError(c, lang, projectID, "add member to", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	projectID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "userId", lang)
	if !ok {
		return
	}

	if err := h.projectService.RemoveMember(c.Request.Context(), userID, projectID, memberID); err != nil {
		if errors.Is(err, domain.ErrOwnerNotRemovable) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgOwnerNotRemovable, lang),
			)
			return
		}
		h.respondProjectMutationError(c, lang, projectID, "remove member from", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) respondProjectMutationError(c *gin.Context, lang string, projectID uuid.UUID, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgProjectNotFound, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(apierrors.CodeForbidden, apierrors.MsgForbidden, lang),
		)
	case errors.Is(err, domain.ErrParentCycle):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgParentCycle, lang),
		)
	default:
		zap.L().Error("failed to "+action+" project", zap.String("project_id", projectID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
	}
}
