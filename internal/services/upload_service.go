package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"lye_backend/internal/storage"
	"lye_backend/pkg/apperrors"
)

// UploadService accepts one attachment per request, validates its declared
// type, and persists it under a generated name. The caller links the
// returned name into the owning record only after a successful save.
type UploadService interface {
	// StorePDF persists a PDF attachment and returns its stored name.
	StorePDF(ctx context.Context, file *multipart.FileHeader) (string, error)

	// StoreImage persists an image attachment and returns its stored name.
	StoreImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	storage storage.Storage
	maxSize int64
}

func NewUploadService(st storage.Storage, maxSize int64) UploadService {
	return &uploadService{storage: st, maxSize: maxSize}
}

func (s *uploadService) StorePDF(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.store(ctx, file, []string{"application/pdf"})
}

func (s *uploadService) StoreImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.store(ctx, file, []string{"image/*"})
}

func (s *uploadService) store(ctx context.Context, file *multipart.FileHeader, allowed []string) (string, error) {
	if file == nil {
		return "", apperrors.ErrFileMissing
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !ContentTypeAllowed(contentType, allowed) {
		return "", apperrors.ErrUnsupportedMediaType
	}

	storedName, err := GenerateStoredName(file.Filename)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	// The file must be durable before any record references it. If the
	// record insert fails afterwards the orphaned file is an accepted,
	// documented leak.
	if err := s.storage.Save(ctx, storedName, src, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	return storedName, nil
}

// ContentTypeAllowed matches a declared content type against the allowed
// set. An "image/*" style entry matches the whole major type.
func ContentTypeAllowed(contentType string, allowed []string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	// Strip parameters like "; charset=..."
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		return false
	}

	for _, a := range allowed {
		if w, ok := strings.CutSuffix(a, "/*"); ok {
			if strings.HasPrefix(ct, w+"/") {
				return true
			}
			continue
		}
		if ct == a {
			return true
		}
	}
	return false
}

// GenerateStoredName builds a collision-resistant file name from a
// timestamp and random suffix, preserving the sanitized original
// extension. The client-supplied name itself is never stored.
func GenerateStoredName(originalName string) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate file name suffix: %w", err)
	}
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(buf), sanitizeExt(originalName)), nil
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if ext == "" || ext == "." {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
