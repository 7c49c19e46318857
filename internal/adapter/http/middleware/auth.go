package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
)

const (
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// RequireAuth parses the Bearer access token and stores the caller's
// id and system role on the request context.
func RequireAuth(tokens *authtoken.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.CodeAuthRequired, apierrors.MsgAuthRequired, lang),
			)
			return
		}

		claims, err := tokens.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			code := apierrors.CodeInvalidToken
			msg := apierrors.MsgInvalidToken
			if errors.Is(err, authtoken.ErrExpiredToken) {
				code = apierrors.CodeTokenExpired
				msg = apierrors.MsgTokenExpired
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.CreateError(code, msg, lang))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(apierrors.CodeInvalidToken, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates /admin routes on the system role carried in the
// access token. Project-level roles play no part here.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != string(domain.SystemRoleAdmin) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(apierrors.CodeForbidden, apierrors.MsgAdminOnly, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) uuid.UUID {
	if value, exists := c.Get(ctxUserID); exists {
		if id, ok := value.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

func GetUserRole(c *gin.Context) string {
	if value, exists := c.Get(ctxUserRole); exists {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}
