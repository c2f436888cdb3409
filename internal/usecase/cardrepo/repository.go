package cardrepo

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/pkg/clock"
	"netcard-manager/internal/pkg/errs"
	"netcard-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxSerialAttempts bounds the regeneration loop for one serial.
const maxSerialAttempts = 1000

// Repository owns the card collection. Every command runs under one lock,
// applies the lifecycle transition, and mirrors the full collection to the
// blob store.
type Repository struct {
	mu       sync.Mutex
	cards    []card.Card
	bySerial map[string]int

	store   shared.BlobStore
	codec   shared.SnapshotCodec
	clock   clock.Clock
	serials card.SerialGenerator
	logger  *slog.Logger
}

func New(
	store shared.BlobStore,
	codec shared.SnapshotCodec,
	clk clock.Clock,
	serials card.SerialGenerator,
	logger *slog.Logger,
) *Repository {
	return &Repository{
		bySerial: make(map[string]int),
		store:    store,
		codec:    codec,
		clock:    clk,
		serials:  serials,
		logger:   logger,
	}
}

// Load replaces the collection with the stored snapshot. An absent snapshot
// yields an empty collection. A failed read or a corrupt snapshot also
// yields an empty collection; the error is returned for reporting only.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset(nil)

	data, err := r.store.Load(ctx)
	if err != nil {
		return errs.Wrap(err, "load card snapshot")
	}
	if len(data) == 0 {
		return nil
	}

	cards, err := r.codec.Decode(data)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "decode card snapshot"), errs.ErrCorruptSnapshot)
	}

	seenSerials := make(map[string]struct{}, len(cards))
	seenIDs := make(map[uuid.UUID]struct{}, len(cards))
	for i := range cards {
		sn := cards[i].SerialNumber()
		if _, dup := seenSerials[sn]; dup {
			return errs.Mark(errs.Newf("duplicate serial number %s", sn), errs.ErrCorruptSnapshot)
		}
		seenSerials[sn] = struct{}{}

		id := cards[i].ID()
		if _, dup := seenIDs[id]; dup {
			return errs.Mark(errs.Newf("duplicate card id %s", id), errs.ErrCorruptSnapshot)
		}
		seenIDs[id] = struct{}{}
	}

	r.reset(cards)
	r.logger.Info("card snapshot loaded", "cards", len(cards))
	return nil
}

func (r *Repository) reset(cards []card.Card) {
	r.cards = cards
	r.bySerial = make(map[string]int, len(cards))
	for i := range cards {
		r.bySerial[cards[i].SerialNumber()] = i
	}
}

// Create mints count Fresh cards of one denomination.
func (r *Repository) Create(ctx context.Context, value int, count int) ([]card.Card, error) {
	if count <= 0 || count > card.MaxBatchSize {
		return nil, card.ErrInvalidCount
	}
	fv, err := card.NewFaceValue(value)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := clock.NowUTC(r.clock)
	batch := make([]card.Card, 0, count)
	taken := make(map[string]struct{}, count)

	for range count {
		serial, err := r.nextSerial(taken)
		if err != nil {
			return nil, err
		}
		id, err := uuid.NewV7()
		if err != nil {
			return nil, errs.Wrap(err, "generate card id")
		}
		c, err := card.NewCard(id, serial, fv, now)
		if err != nil {
			return nil, err
		}
		taken[serial] = struct{}{}
		batch = append(batch, *c)
	}

	for i := range batch {
		r.bySerial[batch[i].SerialNumber()] = len(r.cards)
		r.cards = append(r.cards, batch[i])
	}

	out := make([]card.Card, len(batch))
	copy(out, batch)
	return out, r.persist(ctx)
}

func (r *Repository) nextSerial(batch map[string]struct{}) (string, error) {
	for range maxSerialAttempts {
		s, err := r.serials.Generate()
		if err != nil {
			return "", errs.Wrap(err, "generate serial number")
		}
		if _, ok := r.bySerial[s]; ok {
			continue
		}
		if _, ok := batch[s]; ok {
			continue
		}
		return s, nil
	}
	return "", card.ErrSerialSpaceExhausted
}

func (r *Repository) FindBySerial(serial string) (card.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.bySerial[serial]
	if !ok {
		return card.Card{}, card.ErrNotFound
	}
	return r.cards[idx], nil
}

func (r *Repository) Activate(ctx context.Context, serial string) (card.Card, error) {
	return r.transition(ctx, serial, (*card.Card).Activate)
}

func (r *Repository) Suspend(ctx context.Context, serial string) (card.Card, error) {
	return r.transition(ctx, serial, (*card.Card).Suspend)
}

func (r *Repository) Reactivate(ctx context.Context, serial string) (card.Card, error) {
	return r.transition(ctx, serial, (*card.Card).Resume)
}

// transition applies fn to a copy and commits it only when fn succeeds, so a
// rejected command leaves the collection untouched.
func (r *Repository) transition(ctx context.Context, serial string, fn func(*card.Card, time.Time) error) (card.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.bySerial[serial]
	if !ok {
		return card.Card{}, card.ErrNotFound
	}

	next := r.cards[idx]
	if err := fn(&next, clock.NowUTC(r.clock)); err != nil {
		return card.Card{}, err
	}
	r.cards[idx] = next

	return next, r.persist(ctx)
}

// persist must be called with mu held.
func (r *Repository) persist(ctx context.Context) error {
	data, err := r.codec.Encode(r.cards)
	if err != nil {
		return r.warn(errs.Wrap(err, "encode card snapshot"))
	}
	if err := r.store.Save(ctx, data); err != nil {
		return r.warn(errs.Mark(errs.Wrap(err, "save card snapshot"), errs.ErrStoreOperationFailed))
	}
	return nil
}

func (r *Repository) warn(err error) error {
	r.logger.Warn("card snapshot not persisted", "error", err.Error(), "cards", len(r.cards))
	return &PersistWarning{Err: err}
}

// List returns every card in creation order.
func (r *Repository) List() []card.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]card.Card, len(r.cards))
	copy(out, r.cards)
	return out
}

// Search matches query as given against the serial number and the decimal
// face value. A blank query matches nothing.
func (r *Repository) Search(query string) []card.Card {
	out := []card.Card{}
	if strings.TrimSpace(query) == "" {
		return out
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cards {
		c := &r.cards[i]
		if strings.Contains(c.SerialNumber(), query) || strings.Contains(c.FaceValue().String(), query) {
			out = append(out, *c)
		}
	}
	return out
}

// Recent returns up to n of the newest cards, newest first.
func (r *Repository) Recent(n int) []card.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 {
		return []card.Card{}
	}
	n = min(n, len(r.cards))
	out := make([]card.Card, 0, n)
	for i := len(r.cards) - 1; i >= len(r.cards)-n; i-- {
		out = append(out, r.cards[i])
	}
	return out
}

func (r *Repository) Stats() card.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return card.Summarize(r.cards)
}

// Now is the repository's notion of the current instant, exposed so read
// paths can compute remaining time consistently with the commands.
func (r *Repository) Now() time.Time {
	return clock.NowUTC(r.clock)
}
