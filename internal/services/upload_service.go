package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/you/fitbyte/domain"
)

// MaxUploadBytes is the default upload ceiling, 100 KiB
const MaxUploadBytes = 100 * 1024

var declaredImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// UploadServiceImpl implements domain.UploadService
type UploadServiceImpl struct {
	storage        domain.ObjectStorage
	maxBytes       int64
	strictSniffing bool
}

// NewUploadService creates an upload gate in front of storage. With
// strictSniffing the byte signature must also be JPEG or PNG.
func NewUploadService(storage domain.ObjectStorage, maxBytes int64, strictSniffing bool) domain.UploadService {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	return &UploadServiceImpl{storage: storage, maxBytes: maxBytes, strictSniffing: strictSniffing}
}

// Upload checks type and size of the fully buffered file, then stores it
// under a random name and returns the public URI.
func (s *UploadServiceImpl) Upload(ctx context.Context, file domain.FileUpload) (string, error) {
	contentType := normalizeContentType(file.ContentType)
	ext, ok := declaredImageTypes[contentType]
	if !ok {
		return "", domain.ErrInvalidFileType
	}

	if int64(len(file.Data)) > s.maxBytes {
		return "", domain.ErrFileTooLarge
	}

	if s.strictSniffing {
		detected := mimetype.Detect(file.Data)
		switch {
		case detected.Is("image/jpeg"):
			contentType, ext = "image/jpeg", ".jpg"
		case detected.Is("image/png"):
			contentType, ext = "image/png", ".png"
		default:
			return "", domain.ErrInvalidFileType
		}
	}

	objectName := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	uri, err := s.storage.Put(ctx, objectName, contentType, file.Data)
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return uri, nil
}

// normalizeContentType lowercases the media type and drops any parameters
func normalizeContentType(ct string) string {
	mediaType, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
