package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
)

// parseIDParam reads a uuid path parameter; on failure it has already
// written the 400 response.
func parseIDParam(c *gin.Context, name, lang string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(apierrors.CodeValidation, apierrors.MsgInvalidID, lang),
		)
		return uuid.Nil, false
	}
	return id, true
}
