package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/fitbyte/domain"
	"github.com/you/fitbyte/internal/observability"
)

// FileHandlers serves POST /file
type FileHandlers struct {
	uploadSvc domain.UploadService
	maxBytes  int64
	log       *slog.Logger
}

func NewFileHandlers(uploadSvc domain.UploadService, maxBytes int64, log *slog.Logger) *FileHandlers {
	return &FileHandlers{uploadSvc: uploadSvc, maxBytes: maxBytes, log: log}
}

// Upload reads the "file" form field into memory and hands it to the upload gate.
// At most maxBytes+1 bytes are read so oversize files are still detected.
func (h *FileHandlers) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, h.log, domain.NewValidationError("file", "is required"))
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	uri, err := h.uploadSvc.Upload(c.Request.Context(), domain.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		observability.RecordUpload(domain.KindOf(err).String())
		respondError(c, h.log, err)
		return
	}

	observability.RecordUpload("ok")
	c.JSON(http.StatusOK, gin.H{"uri": uri})
}
