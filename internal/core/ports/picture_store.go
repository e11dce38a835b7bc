package ports

import (
	"context"
	"io"
)

// PictureStore uploads product pictures to object storage and returns their public URL.
type PictureStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}
