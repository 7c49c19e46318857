package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/mapper"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/validation"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter := domain.UserListFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_order") == "desc",
		Page:     queryInt(c, "page", 1),
		PerPage:  queryInt(c, "per_page", 10),
	}
	if status := c.Query("status"); status != "" {
		value := domain.UserStatus(status)
		filter.Status = &value
	}
	if role := c.Query("role"); role != "" {
		value := domain.SystemRole(role)
		filter.Role = &value
	}

	page, err := h.adminService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list users for admin", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserPage(page))
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	actorID := middleware.GetUserID(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateUserInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.adminService.CreateUser(c.Request.Context(), actorID, input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(apierrors.CodeConflict, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	actorID := middleware.GetUserID(c)

	userID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateUserInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.adminService.UpdateUser(c.Request.Context(), actorID, userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update user", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)
	actorID := middleware.GetUserID(c)

	userID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), actorID, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete user", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListRoles(c *gin.Context) {
	lang := middleware.GetLang(c)

	roles, err := h.adminService.ListRoles(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list roles", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToRoleItems(roles))
}

func (h *AdminHandler) CreateRole(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidRolePayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateRoleInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidRolePayload, lang),
		)
		return
	}

	role, err := h.adminService.CreateRole(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNameTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(apierrors.CodeConflict, apierrors.MsgRoleNameTaken, lang),
			)
			return
		}

		zap.L().Error("failed to create role", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToRoleItem(role))
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	lang := middleware.GetLang(c)

	roleID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidRolePayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidRolePayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateRoleInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidRolePayload, lang),
		)
		return
	}

	role, err := h.adminService.UpdateRole(c.Request.Context(), roleID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoleNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgRoleNotFound, lang),
			)
		case errors.Is(err, domain.ErrRoleNameTaken):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(apierrors.CodeConflict, apierrors.MsgRoleNameTaken, lang),
			)
		default:
			zap.L().Error("failed to update role", zap.String("role_id", roleID.String()), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToRoleItem(role))
}

func (h *AdminHandler) DeleteRole(c *gin.Context) {
	lang := middleware.GetLang(c)

	roleID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	if err := h.adminService.DeleteRole(c.Request.Context(), roleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgRoleNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete role", zap.String("role_id", roleID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListProjects is the admin inventory: every project, soft-deleted
// included.
func (h *AdminHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter := domain.ProjectListFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_order") == "desc",
		Page:     queryInt(c, "page", 1),
		PerPage:  queryInt(c, "per_page", 10),
	}
	if status := c.Query("status"); status != "" {
		value := domain.ProjectStatus(status)
		filter.Status = &value
	}

	page, err := h.adminService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list projects for admin", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectPage(page))
}

func (h *AdminHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter := domain.TaskListFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_order") == "desc",
		Page:     queryInt(c, "page", 1),
		PerPage:  queryInt(c, "per_page", 10),
	}
	if status := c.Query("status"); status != "" {
		value := domain.TaskStatus(status)
		filter.Status = &value
	}

	page, err := h.adminService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks for admin", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPage(page))
}

func (h *AdminHandler) UserActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	buckets, err := h.adminService.UserActivity(c.Request.Context(), queryInt(c, "days", 30))
	if err != nil {
		zap.L().Error("failed to aggregate user activity", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityBucketItems(buckets))
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
