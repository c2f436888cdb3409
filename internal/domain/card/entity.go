package card

import (
	"time"

	"netcard-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

// Card is a prepaid access voucher. Identity fields are immutable; only the
// status changes, and only through Activate, Suspend and Resume.
type Card struct {
	id            uuid.UUID
	serial        SerialNumber
	value         FaceValue
	durationHours int
	status        Status
	createdAt     time.Time
}

func NewCard(id uuid.UUID, serial string, value FaceValue, createdAt time.Time) (*Card, error) {
	sn, err := NewSerialNumber(serial)
	if err != nil {
		return nil, err
	}
	if !value.IsValid() {
		return nil, ErrInvalidValue
	}
	if id == uuid.Nil {
		v7, err := uuid.NewV7()
		if err != nil {
			return nil, errs.Wrap(err, "generate card id")
		}
		id = v7
	}

	return &Card{
		id:            id,
		serial:        sn,
		value:         value,
		durationHours: value.DurationHours(),
		status:        Fresh{},
		createdAt:     createdAt,
	}, nil
}

// ReconstructCard rebuilds a card from stored state. durationHours is taken
// as stored and never re-derived from the face value, and bounds both the
// active window and any banked time.
func ReconstructCard(
	id uuid.UUID,
	serial string,
	value FaceValue,
	durationHours int,
	status Status,
	createdAt time.Time,
) (*Card, error) {
	sn, err := NewSerialNumber(serial)
	if err != nil {
		return nil, err
	}
	if !value.IsValid() {
		return nil, ErrInvalidValue
	}
	if durationHours <= 0 {
		return nil, ErrInvalidDuration
	}
	if err := validateStatus(status, hoursToDuration(durationHours)); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}

	return &Card{
		id:            id,
		serial:        sn,
		value:         value,
		durationHours: durationHours,
		status:        status,
		createdAt:     createdAt,
	}, nil
}

func validateStatus(status Status, duration time.Duration) error {
	switch s := status.(type) {
	case Fresh:
		return nil
	case Active:
		if s.ExpiresAt.Before(s.ActivatedAt) || s.Window() > duration {
			return ErrInvalidStatus
		}
		return nil
	case Suspended:
		if s.Remaining < 0 || s.Remaining > duration {
			return ErrInvalidStatus
		}
		return nil
	default:
		return ErrInvalidStatus
	}
}

// Activate opens an access window. A fresh card gets its full duration; a
// suspended card with banked time resumes with exactly that time.
func (c *Card) Activate(now time.Time) error {
	switch s := c.status.(type) {
	case Active:
		return ErrAlreadyActive
	case Fresh:
		c.status = Active{ActivatedAt: now, ExpiresAt: now.Add(c.Duration())}
		return nil
	case Suspended:
		if !s.HasBalance() {
			return ErrNothingToActivate
		}
		c.status = Active{ActivatedAt: now, ExpiresAt: now.Add(s.Remaining)}
		return nil
	default:
		return ErrInvalidStatus
	}
}

// Resume reopens a suspended card with banked time. Unlike Activate it never
// starts a new window.
func (c *Card) Resume(now time.Time) error {
	s, ok := c.status.(Suspended)
	if !ok || !s.HasBalance() {
		return ErrNoRemainingBalance
	}
	c.status = Active{ActivatedAt: now, ExpiresAt: now.Add(s.Remaining)}
	return nil
}

// Suspend closes the active window and banks what is left of it. A lapsed
// window banks zero.
func (c *Card) Suspend(now time.Time) error {
	a, ok := c.status.(Active)
	if !ok {
		return ErrNotActive
	}

	remaining := a.ExpiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	// clock skew must not bank more than the session held
	if w := a.Window(); remaining > w {
		remaining = w
	}

	c.status = Suspended{SuspendedAt: now, Remaining: remaining}
	return nil
}

// RemainingAt is the access time the card still carries at now.
func (c *Card) RemainingAt(now time.Time) time.Duration {
	switch s := c.status.(type) {
	case Active:
		if d := s.ExpiresAt.Sub(now); d > 0 {
			return d
		}
		return 0
	case Suspended:
		return s.Remaining
	default:
		return c.Duration()
	}
}

// IsLapsed reports an active card whose window has passed. The card stays
// Active until a suspend reconciles it.
func (c *Card) IsLapsed(now time.Time) bool {
	a, ok := c.status.(Active)
	return ok && !now.Before(a.ExpiresAt)
}

func (c *Card) IsActive() bool {
	_, ok := c.status.(Active)
	return ok
}

func (c *Card) IsConsumed() bool {
	s, ok := c.status.(Suspended)
	return ok && !s.HasBalance()
}

func (c *Card) Duration() time.Duration { return hoursToDuration(c.durationHours) }

func (c *Card) ID() uuid.UUID          { return c.id }
func (c *Card) SerialNumber() string   { return c.serial.String() }
func (c *Card) FaceValue() FaceValue   { return c.value }
func (c *Card) DurationHours() int     { return c.durationHours }
func (c *Card) Status() Status         { return c.status }
func (c *Card) StatusKind() StatusKind { return c.status.Kind() }
func (c *Card) CreatedAt() time.Time   { return c.createdAt }
