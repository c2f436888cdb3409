//go:build unit

package blobstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"netcard-manager/internal/infra"
	"netcard-manager/internal/infra/blobstore"
	"netcard-manager/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	logger := testutil.DiscardLogger()

	t.Run("missing file loads nil", func(t *testing.T) {
		s, err := blobstore.NewFileStore(t.TempDir(), "cards", logger)
		require.NoError(t, err)

		data, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("creates the directory and writes key.json", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		s, err := blobstore.NewFileStore(dir, "netcard_cards", logger)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "netcard_cards.json"), s.Path())

		require.NoError(t, s.Save(ctx, []byte(`[{"serialNumber":"123456789"}]`)))

		raw, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.Equal(t, `[{"serialNumber":"123456789"}]`, string(raw))

		data, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
	})

	t.Run("overwrite leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		s, err := blobstore.NewFileStore(dir, "cards", logger)
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, []byte(`[1]`)))
		require.NoError(t, s.Save(ctx, []byte(`[1,2]`)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cards.json", entries[0].Name())

		data, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, `[1,2]`, string(data))
	})

	t.Run("write failure is a store error", func(t *testing.T) {
		dir := t.TempDir()
		s, err := blobstore.NewFileStore(dir, "cards", logger)
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(dir))

		err = s.Save(ctx, []byte(`[]`))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindWriteFailure))
	})

	t.Run("read failure is a store error", func(t *testing.T) {
		dir := t.TempDir()
		s, err := blobstore.NewFileStore(dir, "cards", logger)
		require.NoError(t, err)
		// a directory where the file should be
		require.NoError(t, os.Mkdir(s.Path(), 0o755))

		_, err = s.Load(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindReadFailure))
	})
}
