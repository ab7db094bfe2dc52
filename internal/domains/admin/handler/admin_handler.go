package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// AdminHandler handles HTTP requests for the authentication operations.
type AdminHandler struct {
	service admin.Service
	devMode bool
}

func NewAdminHandler(service admin.Service, devMode bool) *AdminHandler {
	return &AdminHandler{
		service: service,
		devMode: devMode,
	}
}

// Register handles POST /api/admin/register.
// Bootstrap only: permanently disabled once an administrator exists.
func (h *AdminHandler) Register(c *gin.Context) {
	var req admin.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   resp.Token,
		"message": "Admin account created successfully",
	})
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide email and password")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   resp.Token,
		"admin":   resp.Admin,
	})
}

// GetMe handles GET /api/admin/me.
func (h *AdminHandler) GetMe(c *gin.Context) {
	adminID, ok := h.subjectID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetMe(c.Request.Context(), adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateProfile handles PUT /api/admin/profile.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	adminID, ok := h.subjectID(c)
	if !ok {
		return
	}

	var req admin.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), adminID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// ChangePassword handles PUT /api/admin/change-password.
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	adminID, ok := h.subjectID(c)
	if !ok {
		return
	}

	var req admin.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), adminID, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password changed successfully")
}

// subjectID resolves the authenticated admin id set by the auth middleware.
func (h *AdminHandler) subjectID(c *gin.Context) (uuid.UUID, bool) {
	adminID, err := uuid.Parse(middleware.AdminID(c))
	if err != nil {
		response.Unauthorized(c, "Not authorized to access this route")
		return uuid.Nil, false
	}
	return adminID, true
}

// handleError maps domain errors to the response envelope.
func (h *AdminHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs.Error())
		return
	}

	switch {
	case errors.Is(err, admin.ErrAdminExists):
		response.Forbidden(c, "Admin already exists. Contact system administrator to create more users.")
	case errors.Is(err, admin.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, admin.ErrWrongPassword):
		response.Unauthorized(c, "Current password is incorrect")
	case errors.Is(err, admin.ErrAdminNotFound):
		response.NotFound(c, "Admin not found")
	case errors.Is(err, admin.ErrEmailTaken):
		response.BadRequest(c, "Email already in use")
	default:
		logger.Error("admin handler error", err)
		if h.devMode {
			response.InternalServerError(c, err.Error())
			return
		}
		response.InternalServerError(c, "Internal server error")
	}
}
