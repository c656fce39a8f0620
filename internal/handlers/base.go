package handlers

import (
	"errors"
	"net/http"

	"linkden/internal/service"

	"github.com/gin-gonic/gin"
)

// RenderError maps a use-case error onto an HTTP status and JSON body.
func RenderError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(statusFor(svcErr.Kind), gin.H{"error": svcErr.Message})
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindNotAuthenticated, service.KindInvalidCredentials:
		return http.StatusUnauthorized
	case service.KindInvalidUser, service.KindOwnershipViolation:
		return http.StatusForbidden
	case service.KindInvalidPost:
		return http.StatusNotFound
	case service.KindWeakPassword:
		return http.StatusBadRequest
	case service.KindDuplicateEmail:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
