package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every handler reply.
type Response struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data,omitempty"`
	Message     string      `json:"message,omitempty"`
	Count       *int        `json:"count,omitempty"`
	Total       *int        `json:"total,omitempty"`
	Pages       *int        `json:"pages,omitempty"`
	CurrentPage *int        `json:"currentPage,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Paged wraps a list result with its pagination metadata.
func Paged(c *gin.Context, statusCode int, data interface{}, count, total, pages, currentPage int) {
	c.JSON(statusCode, Response{
		Success:     true,
		Data:        data,
		Count:       &count,
		Total:       &total,
		Pages:       &pages,
		CurrentPage: &currentPage,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
