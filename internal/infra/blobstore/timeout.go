package blobstore

import (
	"context"
	"time"

	"netcard-manager/internal/usecase/shared"
)

type timeoutStore struct {
	next    shared.BlobStore
	timeout time.Duration
}

// WithTimeout bounds every Load and Save of next. A non-positive timeout
// returns next unchanged.
func WithTimeout(next shared.BlobStore, timeout time.Duration) shared.BlobStore {
	if timeout <= 0 {
		return next
	}
	return &timeoutStore{next: next, timeout: timeout}
}

func (s *timeoutStore) Load(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Load(ctx)
}

func (s *timeoutStore) Save(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Save(ctx, data)
}
