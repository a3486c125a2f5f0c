package service

import (
	"context"
	"io"
	"strings"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	apperrors "github.com/VISHALLkandharee/Room-Finder/internal/pkg/errors"
	"github.com/VISHALLkandharee/Room-Finder/internal/storage"
	"go.uber.org/zap"
)

// Image content types accepted for listing photos.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ImageFile is one file from a multipart upload batch.
type ImageFile struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// SkippedFile records a file that was left out of the batch with the
// reason shown to the uploader.
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// UploadResult holds the outcome of a batch. URLs are in upload order.
// On a storage failure the result still carries the URLs accepted before
// the failure so the caller does not lose finished work.
type UploadResult struct {
	URLs    []string      `json:"urls"`
	Skipped []SkippedFile `json:"skipped,omitempty"`
}

type UploadService struct {
	store        storage.ObjectStore
	maxImageSize int64
	logger       *zap.Logger
}

func NewUploadService(store storage.ObjectStore, maxImageSize int64, logger *zap.Logger) *UploadService {
	return &UploadService{
		store:        store,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

// UploadImages stores a batch of listing photos one at a time, preserving
// order. Oversized or non-image files are skipped with a warning and the
// batch continues; a storage error stops the batch and returns the partial
// result alongside the error.
func (s *UploadService) UploadImages(ctx context.Context, identity model.Identity, files []*ImageFile) (*UploadResult, error) {
	if identity.IsAnonymous() {
		return nil, apperrors.ErrUnauthorized
	}
	if !identity.IsAdmin {
		return nil, apperrors.ErrNotLister
	}
	if len(files) == 0 {
		return nil, apperrors.ErrValidation.WithDetails("no files in upload batch")
	}

	result := &UploadResult{}

	for _, file := range files {
		if file.Size > s.maxImageSize {
			s.logger.Warn("Skipping oversized image",
				zap.String("file", file.Name),
				zap.Int64("size", file.Size),
				zap.Int64("limit", s.maxImageSize),
			)
			result.Skipped = append(result.Skipped, SkippedFile{
				Name:   file.Name,
				Reason: "file exceeds the maximum image size",
			})
			continue
		}

		contentType := normalizeContentType(file.ContentType)
		if !allowedImageTypes[contentType] {
			s.logger.Warn("Skipping non-image file",
				zap.String("file", file.Name),
				zap.String("content_type", file.ContentType),
			)
			result.Skipped = append(result.Skipped, SkippedFile{
				Name:   file.Name,
				Reason: "only image files are accepted",
			})
			continue
		}

		key := storage.NewObjectKey(identity.UserID, file.Name)
		url, err := s.store.Put(ctx, key, file.Reader, file.Size, contentType)
		if err != nil {
			s.logger.Error("Image upload failed, aborting batch",
				zap.String("file", file.Name),
				zap.String("key", key),
				zap.Int("accepted", len(result.URLs)),
				zap.Error(err),
			)
			return result, apperrors.Wrap(err, apperrors.ErrStorageGateway.Code, apperrors.ErrStorageGateway.Message)
		}

		result.URLs = append(result.URLs, url)
	}

	s.logger.Info("Image batch uploaded",
		zap.String("owner_id", identity.UserID),
		zap.Int("accepted", len(result.URLs)),
		zap.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func normalizeContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
