package bootstrap

import (
	"context"
	"log/slog"

	"netcard-manager/internal/infra/blobstore"
	"netcard-manager/internal/pkg/config"
	"netcard-manager/internal/pkg/errs"
	"netcard-manager/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewBlobStore,
	),
)

// NewBlobStore picks the snapshot driver named by STORE_DRIVER. Connections
// for postgres and redis are only opened when selected.
func NewBlobStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.BlobStore, error) {
	var store shared.BlobStore

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store = blobstore.NewMemoryStore()

	case config.StoreDriverFile:
		fs, err := blobstore.NewFileStore(cfg.Store.FileDir, cfg.Store.Key, logger)
		if err != nil {
			return nil, err
		}
		store = fs

	case config.StoreDriverPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		ps := blobstore.NewPostgresStore(pool, cfg.Store.Key, logger)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.Timeout)
		defer cancel()
		if err := ps.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		store = ps

	case config.StoreDriverRedis:
		client, err := NewRedis(lc, cfg)
		if err != nil {
			return nil, err
		}
		store = blobstore.NewRedisStore(client, cfg.Store.Key, logger)

	default:
		return nil, errs.Newf("unsupported store driver %q", cfg.Store.Driver)
	}

	logger.Info("card store selected", "driver", cfg.Store.Driver, "key", cfg.Store.Key)
	return blobstore.WithTimeout(store, cfg.Store.Timeout), nil
}
