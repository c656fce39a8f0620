package handlers

import (
	"net/http"

	"linkden/internal/middleware"
	"linkden/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.Service
}

func NewUserHandler(svc *service.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// List returns all users. Email fields are already projected per viewer by
// the service.
func (h *UserHandler) List(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	users, err := h.svc.ListUsers(c.Request.Context(), principal)
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
