package commands

import (
	"context"
	"log/slog"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/pkg/errs"
	"netcard-manager/internal/usecase/cardrepo"
	"netcard-manager/internal/usecase/readmodel"
)

// CardRepository is the write side of the card collection.
type CardRepository interface {
	Create(ctx context.Context, value int, count int) ([]card.Card, error)
	Activate(ctx context.Context, serial string) (card.Card, error)
	Suspend(ctx context.Context, serial string) (card.Card, error)
	Reactivate(ctx context.Context, serial string) (card.Card, error)
	Now() time.Time
}

type CardResult struct {
	Card    *readmodel.CardRM
	Warning string
}

type CreateCardsResult struct {
	Cards   []*readmodel.CardRM
	Warning string
}

type CardCommands interface {
	CreateCards(ctx context.Context, value, count int) (*CreateCardsResult, error)
	ActivateCard(ctx context.Context, serial string) (*CardResult, error)
	SuspendCard(ctx context.Context, serial string) (*CardResult, error)
	ReactivateCard(ctx context.Context, serial string) (*CardResult, error)
}

type cardCommandsImpl struct {
	repo   CardRepository
	logger *slog.Logger
}

func NewCardCommands(repo CardRepository, logger *slog.Logger) CardCommands {
	return &cardCommandsImpl{
		repo:   repo,
		logger: logger,
	}
}

func (c *cardCommandsImpl) CreateCards(ctx context.Context, value, count int) (*CreateCardsResult, error) {
	cards, err := c.repo.Create(ctx, value, count)
	warning, err := c.splitWarning(err, "create cards", "value", value, "count", count)
	if err != nil {
		return nil, err
	}

	rms, err := readmodel.FromCards(cards, c.repo.Now())
	if err != nil {
		return nil, errs.Wrap(err, "build card read models")
	}

	c.logger.Info("cards created", "value", value, "count", len(cards))
	return &CreateCardsResult{Cards: rms, Warning: warning}, nil
}

func (c *cardCommandsImpl) ActivateCard(ctx context.Context, serial string) (*CardResult, error) {
	return c.apply(ctx, "activate", serial, c.repo.Activate)
}

func (c *cardCommandsImpl) SuspendCard(ctx context.Context, serial string) (*CardResult, error) {
	return c.apply(ctx, "suspend", serial, c.repo.Suspend)
}

func (c *cardCommandsImpl) ReactivateCard(ctx context.Context, serial string) (*CardResult, error) {
	return c.apply(ctx, "reactivate", serial, c.repo.Reactivate)
}

func (c *cardCommandsImpl) apply(
	ctx context.Context,
	op string,
	serial string,
	fn func(context.Context, string) (card.Card, error),
) (*CardResult, error) {
	updated, err := fn(ctx, serial)
	warning, err := c.splitWarning(err, op, "serial", serial)
	if err != nil {
		return nil, err
	}

	rm, err := readmodel.FromCard(updated, c.repo.Now())
	if err != nil {
		return nil, errs.Wrap(err, "build card read model")
	}

	c.logger.Info("card "+op, "serial", serial, "status", rm.Status)
	return &CardResult{Card: rm, Warning: warning}, nil
}

// splitWarning separates a save failure, which leaves the change applied,
// from a rejected command.
func (c *cardCommandsImpl) splitWarning(err error, op string, attrs ...any) (string, error) {
	if err == nil {
		return "", nil
	}
	if cardrepo.IsPersistWarning(err) {
		c.logger.Warn(op+" applied but not saved", append(attrs, "error", err.Error())...)
		return err.Error(), nil
	}
	return "", err
}
