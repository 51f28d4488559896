package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phPortfolio/internal/validation"
)

// Every success body wraps its payload under "data"; errors carry "message"
// plus a field-keyed "errors" map on validation failures only.

func Data(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"data": payload})
}

func DataWithMessage(c *gin.Context, status int, message string, payload any) {
	c.JSON(status, gin.H{"message": message, "data": payload})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func ValidationFailed(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "Validation failed",
		"errors":  errs,
	})
}

func Unauthorized(c *gin.Context, msg string) { Error(c, http.StatusUnauthorized, msg) }
func BadRequest(c *gin.Context, msg string)   { Error(c, http.StatusBadRequest, msg) }
func NotFound(c *gin.Context, msg string)     { Error(c, http.StatusNotFound, msg) }
func Internal(c *gin.Context, msg string)     { Error(c, http.StatusInternalServerError, msg) }
