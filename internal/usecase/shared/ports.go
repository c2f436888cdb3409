package shared

import (
	"context"

	"netcard-manager/internal/domain/card"
)

// BlobStore keeps one serialized blob under a fixed key.
// Load returns nil, nil when nothing has been saved yet.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// SnapshotCodec converts the ordered card collection to and from the stored
// blob format.
type SnapshotCodec interface {
	Encode(cards []card.Card) ([]byte, error)
	Decode(data []byte) ([]card.Card, error)
}
