package blobstore

import (
	"context"
	"errors"
	"log/slog"

	"netcard-manager/internal/infra"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the blob as a plain string value without expiry.
type RedisStore struct {
	client redis.Cmdable
	key    string
	logger *slog.Logger
}

func NewRedisStore(client redis.Cmdable, key string, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, key: key, logger: logger}
}

func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapStoreErr(s.logger, infra.KindReadFailure, "get card snapshot", err)
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindWriteFailure, "set card snapshot", err)
	}
	return nil
}
