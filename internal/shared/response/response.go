package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All error bodies are `{"message": "..."}`. Internal detail never
// reaches the client; it is logged server-side at the handler boundary.

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}
