package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/upload"
)

// UploadHandler exposes the Cloudinary signing endpoint.
type UploadHandler struct {
	signer *upload.Signer
}

func NewUploadHandler(signer *upload.Signer) *UploadHandler {
	return &UploadHandler{signer: signer}
}

// Sign handles POST /api/uploads/cloudinary/sign. Any authenticated role
// may request a signature.
func (h *UploadHandler) Sign(c *gin.Context) {
	if h.signer.Unsigned() {
		payload := h.signer.UnsignedAuth()
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"unsigned":      payload.Unsigned,
			"upload_preset": payload.UploadPreset,
			"cloud_name":    payload.CloudName,
		})
		return
	}

	payload := h.signer.SignedAuth(time.Now())
	resp := gin.H{
		"success":    true,
		"signature":  payload.Signature,
		"timestamp":  payload.Timestamp,
		"api_key":    payload.APIKey,
		"cloud_name": payload.CloudName,
	}
	if payload.Folder != "" {
		resp["folder"] = payload.Folder
	}
	c.JSON(http.StatusOK, resp)
}
