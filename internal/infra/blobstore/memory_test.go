//go:build unit

package blobstore_test

import (
	"context"
	"testing"

	"netcard-manager/internal/infra/blobstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store loads nil", func(t *testing.T) {
		s := blobstore.NewMemoryStore()
		data, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("save replaces and copies", func(t *testing.T) {
		s := blobstore.NewMemoryStore()
		blob := []byte(`[{"a":1}]`)
		require.NoError(t, s.Save(ctx, blob))
		blob[0] = 'x'

		data, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, `[{"a":1}]`, string(data))

		require.NoError(t, s.Save(ctx, []byte(`[]`)))
		data, err = s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := blobstore.NewMemoryStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		require.ErrorIs(t, s.Save(cctx, []byte(`[]`)), context.Canceled)
		_, err := s.Load(cctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
