package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/you/fitbyte/domain"
)

var (
	pngSignature  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegSignature = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	gifSignature  = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00")
)

// padded returns sig followed by zero bytes up to size
func padded(sig []byte, size int) []byte {
	if size < len(sig) {
		size = len(sig)
	}
	return append(append([]byte{}, sig...), bytes.Repeat([]byte{0}, size-len(sig))...)
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           "3f1c2d0e-8b5a-4f7e-9c1d-2a3b4c5d6e7f",
		Email:        "test@example.com",
		PasswordHash: "hashed_Abcd1234!",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
