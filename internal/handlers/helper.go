package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseSessionIDParam reads a session ID path parameter. It writes a 400
// response and returns "" when the value is not a UUID.
func ParseSessionIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
			Code:    "invalid_id",
		})
		return ""
	}

	if _, err := uuid.Parse(idStr); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: err.Error(),
			Code:    "invalid_id",
		})
		return ""
	}
	return idStr
}
