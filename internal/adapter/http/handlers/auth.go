package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/mapper"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	user, pair, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(apierrors.CodeConflict, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         mapper.ToUserItem(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	user, pair, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.CodeAuthentication, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         mapper.ToUserItem(user),
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, authtoken.ErrExpiredToken):
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.CodeTokenExpired, apierrors.MsgTokenExpired, lang),
			)
		case errors.Is(err, authtoken.ErrInvalidToken),
			errors.Is(err, authtoken.ErrWrongTokenUse),
			errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.CodeInvalidToken, apierrors.MsgInvalidToken, lang),
			)
		default:
			zap.L().Error("failed to refresh access token", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		zap.L().Error("failed to log user out", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(apierrors.CodeNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load current user", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

// ListUsers is the authenticated user directory used to populate
// member and assignee pickers.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(apierrors.CodeInternal, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}
