package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helpers for the wire contract. Route bodies are fixed shapes
// ({"id":n}, {"success":...,"message":...}, bare arrays), so these
// write exactly those instead of a generic envelope.

// ID writes the {"id": n} body returned by every insert route.
func ID(c *gin.Context, id int64) {
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// OK writes the {"success":true,"message":...} body.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// Fail writes the structured failure body. Store errors use it with
// http.StatusInternalServerError instead of crashing the request.
func Fail(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"success":    false,
		"message":    message,
		"request_id": c.GetString("request_id"),
	})
}

// FailWithDetails adds per-field details, used for binding errors.
func FailWithDetails(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"success":    false,
		"message":    message,
		"details":    details,
		"request_id": c.GetString("request_id"),
	})
}
