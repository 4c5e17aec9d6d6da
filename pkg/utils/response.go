package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the error envelope used by every non-2xx response.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// SuccessResponse writes a success envelope with an optional payload.
func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}
