package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

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

type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) ListSettings(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter := domain.SettingListFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_order") == "desc",
		Page:     queryInt(c, "page", 1),
		PerPage:  queryInt(c, "per_page", 10),
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}

	page, err := h.settingsService.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list settings", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingPage(page))
}

func (h *SettingsHandler) CreateSetting(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidSettingValue, lang),
		)
		return
	}

	input, err := validation.BuildCreateSettingInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidSettingValue, lang),
		)
		return
	}

	setting, err := h.settingsService.Create(c.Request.Context(), input)
	if err != nil {
		h.respondSettingError(c, lang, "create", err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSettingItem(setting))
}

func (h *SettingsHandler) GetSetting(c *gin.Context) {
	lang := middleware.GetLang(c)

	settingID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	setting, err := h.settingsService.Get(c.Request.Context(), settingID)
	if err != nil {
		h.respondSettingError(c, lang, "load", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingItem(setting))
}

func (h *SettingsHandler) UpdateSetting(c *gin.Context) {
	lang := middleware.GetLang(c)

	settingID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	var req dto.UpdateSettingRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidSettingValue, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidSettingValue, lang),
		)
		return
	}

	input, err := validation.BuildUpdateSettingInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidSettingValue, lang),
		)
		return
	}

	setting, err := h.settingsService.Update(c.Request.Context(), settingID, input)
	if err != nil {
		h.respondSettingError(c, lang, "update", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSettingItem(setting))
}

func (h *SettingsHandler) DeleteSetting(c *gin.Context) {
	lang := middleware.GetLang(c)

	settingID, ok := parseIDParam(c, "id", lang)
	if !ok {
		return
	}

	if err := h.settingsService.Delete(c.Request.Context(), settingID); err != nil {
		h.respondSettingError(c, lang, "delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) respondSettingError(c *gin.Context, lang, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrSettingNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgSettingNotFound, lang),
		)
	case errors.Is(err, domain.ErrSettingNameTaken):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(apierrors.CodeConflict, apierrors.MsgSettingNameTaken, lang),
		)
	case errors.Is(err, domain.ErrInvalidSettingValue):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidSettingValue, lang),
		)
	default:
		zap.L().Error("failed to "+action+" setting", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
	}
}
