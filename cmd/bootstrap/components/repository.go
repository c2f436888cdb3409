package components

import (
	"context"
	"log/slog"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/infra/snapshot"
	"netcard-manager/internal/pkg/clock"
	"netcard-manager/internal/usecase/cardrepo"
	"netcard-manager/internal/usecase/commands"
	"netcard-manager/internal/usecase/queries"
	"netcard-manager/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		card.NewRandomSerialGenerator,
		fx.Annotate(
			snapshot.NewJSONCodec,
			fx.As(new(shared.SnapshotCodec)),
		),
		cardrepo.New,
		func(r *cardrepo.Repository) commands.CardRepository { return r },
		func(r *cardrepo.Repository) queries.CardReadStore { return r },
	),
	fx.Invoke(registerSnapshotLoad),
)

// registerSnapshotLoad reads the stored collection before the server starts.
// A failed load leaves the collection empty and is not fatal.
func registerSnapshotLoad(lc fx.Lifecycle, repo *cardrepo.Repository, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := repo.Load(ctx); err != nil {
				logger.Warn("card snapshot not loaded, starting empty", "error", err.Error())
			}
			return nil
		},
	})
}
