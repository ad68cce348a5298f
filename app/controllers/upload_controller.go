package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/isipark/siteapi/pkg/apperr"
	"github.com/isipark/siteapi/pkg/response"
	"github.com/isipark/siteapi/pkg/storage"
)

// maxUploadBytes caps a single media upload at 10 MB.
const maxUploadBytes = 10 << 20

var allowedUploadExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
	".pdf":  true,
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Create handles POST /api/admin/uploads: multipart form with a "file"
// part, stored on the configured disk (local or S3). Responds with the
// public URL.
func (c *UploadController) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Fail(w, apperr.Validation("Invalid upload: file too large or malformed form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Fail(w, apperr.Validation("A file field is required"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExt[ext] {
		response.Fail(w, apperr.Validation("Unsupported file type"))
		return
	}

	path := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().Format("2006/01"), randomName(), ext)

	if err := storage.PutStream(path, file); err != nil {
		response.Fail(w, apperr.Query("Could not store file", err))
		return
	}

	response.Created(w, map[string]interface{}{
		"path": path,
		"url":  storage.URL(path),
		"size": header.Size,
		"name": header.Filename,
	})
}

func randomName() string {
	b := make([]byte, 12)
	rand.Read(b) //nolint:errcheck
	return hex.EncodeToString(b)
}
