package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/academico/school-management-api/pkg/errors"
)

// The wire contract is intentionally flat: list endpoints return a bare JSON
// array, creations return the bare created object, and failures return
// {"error": "..."} with the appropriate status.

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
