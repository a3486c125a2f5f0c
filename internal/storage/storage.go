package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStore is the contract with the image hosting collaborator. Put
// stores the object under key and returns its public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// NewObjectKey builds a collision-resistant object key: owner prefix,
// millisecond timestamp, random suffix, original file extension.
func NewObjectKey(ownerID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%d-%s%s", ownerID, time.Now().UnixMilli(), suffix, ext)
}
