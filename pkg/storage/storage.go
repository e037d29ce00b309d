package storage

import "context"

// Uploader persists an uploaded blob and returns its public URL.
// The core never touches storage backends directly; resume and logo
// uploads go through this interface so the backend can be swapped
// (S3, Wasabi) or mocked in tests.
type Uploader interface {
	Store(ctx context.Context, key string, contentType string, data []byte) (string, error)
}
