package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"blog-backend/internal/config"
)

// Signer produces time-boxed authorizations for direct client uploads to
// Cloudinary. No record of issued signatures is kept; each is scoped to
// its timestamp.
type Signer struct {
	cfg config.CloudinaryConfig
}

func NewSigner(cfg config.CloudinaryConfig) *Signer {
	return &Signer{cfg: cfg}
}

// Unsigned reports whether a pre-configured upload preset is available,
// in which case clients upload without a signature.
func (s *Signer) Unsigned() bool {
	return s.cfg.UploadPreset != ""
}

// UnsignedPayload is the unsigned-mode response body.
type UnsignedPayload struct {
	Unsigned     bool   `json:"unsigned"`
	UploadPreset string `json:"upload_preset"`
	CloudName    string `json:"cloud_name"`
}

// SignedPayload is the signed-mode response body. Folder is included only
// when it participated in the signature.
type SignedPayload struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
	Folder    string `json:"folder,omitempty"`
}

// UnsignedAuth returns the pre-shared upload profile.
func (s *Signer) UnsignedAuth() UnsignedPayload {
	return UnsignedPayload{
		Unsigned:     true,
		UploadPreset: s.cfg.UploadPreset,
		CloudName:    s.cfg.CloudName,
	}
}

// SignedAuth signs the current timestamp (and the configured folder, when
// set). The signed parameter set must be exactly what the client sends to
// Cloudinary, or the upload is rejected.
func (s *Signer) SignedAuth(now time.Time) SignedPayload {
	timestamp := now.Unix()

	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
	}
	if s.cfg.Folder != "" {
		params["folder"] = s.cfg.Folder
	}

	return SignedPayload{
		Signature: s.sign(params),
		Timestamp: timestamp,
		APIKey:    s.cfg.APIKey,
		CloudName: s.cfg.CloudName,
		Folder:    s.cfg.Folder,
	}
}

// sign computes Cloudinary's api_sign_request digest: SHA-1 over the
// alphabetically sorted key=value pairs joined with "&", concatenated
// with the API secret.
func (s *Signer) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + s.cfg.APISecret))
	return hex.EncodeToString(digest[:])
}
