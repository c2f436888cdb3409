package blobstore

import (
	"context"
	"errors"
	"log/slog"

	"netcard-manager/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS card_snapshots (
	key        TEXT PRIMARY KEY,
	payload    BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectSnapshotSQL = `SELECT payload FROM card_snapshots WHERE key = $1`

	upsertSnapshotSQL = `INSERT INTO card_snapshots (key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

// DBTX is the subset of pgxpool.Pool / pgx.Tx the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps the blob as one row of card_snapshots.
type PostgresStore struct {
	db     DBTX
	key    string
	logger *slog.Logger
}

func NewPostgresStore(db DBTX, key string, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, key: key, logger: logger}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableSQL); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindSchemaFailure, "create card_snapshots table", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, selectSnapshotSQL, s.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindReadFailure, "select card snapshot", err)
	}
	return payload, nil
}

func (s *PostgresStore) Save(ctx context.Context, data []byte) error {
	if _, err := s.db.Exec(ctx, upsertSnapshotSQL, s.key, data); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "upsert card snapshot", err)
	}
	return nil
}
