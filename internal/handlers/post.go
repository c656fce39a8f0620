package handlers

import (
	"net/http"

	"linkden/internal/middleware"
	"linkden/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.Service
}

func NewPostHandler(svc *service.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) List(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	posts, err := h.svc.ListPosts(c.Request.Context(), principal)
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	post, err := h.svc.GetPost(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Write(c *gin.Context) {
	var input struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	principal := middleware.CurrentPrincipal(c)
	post, err := h.svc.WritePost(c.Request.Context(), principal, input.Title)
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	post, err := h.svc.DeletePost(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Upvote(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	post, err := h.svc.Upvote(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Downvote(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	post, err := h.svc.Downvote(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
