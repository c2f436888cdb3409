//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ResetSnapshots empties card_snapshots. The table must already exist.
func ResetSnapshots(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE card_snapshots")
	return err
}

func SeedSnapshot(t *testing.T, db DBLike, key string, payload []byte) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO card_snapshots (key, payload) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload",
		key, payload)
	require.NoError(t, err)
}

func ReadSnapshot(t *testing.T, db DBLike, key string) []byte {
	t.Helper()

	var payload []byte
	err := db.QueryRow(context.Background(), "SELECT payload FROM card_snapshots WHERE key = $1", key).Scan(&payload)
	require.NoError(t, err)
	return payload
}
