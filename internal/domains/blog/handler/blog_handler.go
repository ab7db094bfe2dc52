package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/blog"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// BlogHandler handles HTTP requests for the content operations.
type BlogHandler struct {
	service blog.Service
	devMode bool
}

func NewBlogHandler(service blog.Service, devMode bool) *BlogHandler {
	return &BlogHandler{
		service: service,
		devMode: devMode,
	}
}

// List handles GET /api/blogs — published posts only.
func (h *BlogHandler) List(c *gin.Context) {
	var q blog.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.ListPublished(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paged(c, http.StatusOK, result.Items, result.Count, result.Total, result.Pages, result.CurrentPage)
}

// Featured handles GET /api/blogs/featured.
func (h *BlogHandler) Featured(c *gin.Context) {
	blogs, err := h.service.Featured(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, blogs)
}

// GetBySlug handles GET /api/blogs/:slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ListAll handles GET /api/blogs/admin/all — any published state.
func (h *BlogHandler) ListAll(c *gin.Context) {
	var q blog.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.ListAll(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Paged(c, http.StatusOK, result.Items, result.Count, result.Total, result.Pages, result.CurrentPage)
}

// GetByID handles GET /api/blogs/admin/:id.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Create handles POST /api/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// Update handles PUT /api/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req blog.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Publish handles PATCH /api/blogs/:id/publish.
func (h *BlogHandler) Publish(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req blog.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.handleError(c, err)
		return
	}

	b, err := h.service.SetPublished(c.Request.Context(), id, *req.Published)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Delete handles DELETE /api/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Blog deleted successfully")
}

func (h *BlogHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Blog not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs.Error())
		return
	}

	switch {
	case errors.Is(err, blog.ErrBlogNotFound):
		response.NotFound(c, "Blog not found")
	case errors.Is(err, blog.ErrDuplicateSlug):
		response.BadRequest(c, "A post with this slug already exists")
	default:
		logger.Error("blog handler error", err)
		if h.devMode {
			response.InternalServerError(c, err.Error())
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}
