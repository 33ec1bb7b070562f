package utils

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Fail writes the uniform error payload used across the API:
// {"type": ..., "error": ..., "detail": ...}.
func Fail(c *gin.Context, status int, kind, message, detail string) {
	body := gin.H{"type": kind, "error": message}
	if detail != "" {
		body["detail"] = detail
	}
	c.JSON(status, body)
}
