package utils

import "github.com/gin-gonic/gin"

// JSONSuccess wraps a payload in the envelope the dashboards expect.
func JSONSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// JSONError sends an error envelope. The message is shown to end users,
// so callers keep internals out of it.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
