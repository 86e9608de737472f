package storage

import (
	"context"
	"errors"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ObjectStorage defines the object storage operations the app needs:
// fetching the catalog document and handing out temporary links to
// exercise illustrations.
type ObjectStorage interface {
	// GetObject downloads an object's full contents.
	GetObject(ctx context.Context, objectKey string) ([]byte, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

var ErrObjectNotFound = errors.New("object not found in storage")
