package queries

import (
	"context"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/pkg/errs"
	"netcard-manager/internal/usecase/readmodel"
)

const DefaultRecentLimit = 5

// CardReadStore is the read side of the card collection.
type CardReadStore interface {
	FindBySerial(serial string) (card.Card, error)
	List() []card.Card
	Search(query string) []card.Card
	Recent(n int) []card.Card
	Stats() card.Stats
	Now() time.Time
}

type CardQueries interface {
	GetCard(ctx context.Context, serial string) (*readmodel.CardRM, error)
	ListCards(ctx context.Context) ([]*readmodel.CardRM, error)
	SearchCards(ctx context.Context, query string) ([]*readmodel.CardRM, error)
	RecentCards(ctx context.Context, limit int) ([]*readmodel.CardRM, error)
	GetStats(ctx context.Context) (*readmodel.CardStatsRM, error)
}

type cardQueriesImpl struct {
	store CardReadStore
}

func NewCardQueries(store CardReadStore) CardQueries {
	return &cardQueriesImpl{store: store}
}

func (q *cardQueriesImpl) GetCard(ctx context.Context, serial string) (*readmodel.CardRM, error) {
	c, err := q.store.FindBySerial(serial)
	if err != nil {
		return nil, err
	}
	return readmodel.FromCard(c, q.store.Now())
}

func (q *cardQueriesImpl) ListCards(ctx context.Context) ([]*readmodel.CardRM, error) {
	return q.toReadModels(q.store.List())
}

func (q *cardQueriesImpl) SearchCards(ctx context.Context, query string) ([]*readmodel.CardRM, error) {
	return q.toReadModels(q.store.Search(query))
}

func (q *cardQueriesImpl) RecentCards(ctx context.Context, limit int) ([]*readmodel.CardRM, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return q.toReadModels(q.store.Recent(limit))
}

func (q *cardQueriesImpl) GetStats(ctx context.Context) (*readmodel.CardStatsRM, error) {
	return readmodel.FromStats(q.store.Stats()), nil
}

func (q *cardQueriesImpl) toReadModels(cards []card.Card) ([]*readmodel.CardRM, error) {
	rms, err := readmodel.FromCards(cards, q.store.Now())
	if err != nil {
		return nil, errs.Wrap(err, "build card read models")
	}
	return rms, nil
}
