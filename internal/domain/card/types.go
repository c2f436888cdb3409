package card

import (
	"time"

	"netcard-manager/internal/pkg/errs"
)

var (
	ErrInvalidCount         = errs.New("card count must be between 1 and 100")
	ErrInvalidValue         = errs.New("card value must be one of 200, 500, 1000")
	ErrInvalidSerial        = errs.New("serial number must be a 9-digit numeral")
	ErrInvalidDuration      = errs.New("card duration must be positive")
	ErrInvalidStatus        = errs.New("invalid card status")
	ErrInvalidID            = errs.New("card id must not be nil")
	ErrNotFound             = errs.New("card not found")
	ErrAlreadyActive        = errs.New("card is already active")
	ErrNotActive            = errs.New("card is not active")
	ErrNothingToActivate    = errs.New("card has no remaining time to activate")
	ErrNoRemainingBalance   = errs.New("card has no remaining balance to reactivate")
	ErrSerialSpaceExhausted = errs.New("could not generate a unique serial number")
)

type StatusKind string

const (
	StatusFresh     StatusKind = "fresh"
	StatusActive    StatusKind = "active"
	StatusSuspended StatusKind = "suspended"
)

func (k StatusKind) String() string {
	return string(k)
}

func (k StatusKind) IsValid() bool {
	switch k {
	case StatusFresh, StatusActive, StatusSuspended:
		return true
	default:
		return false
	}
}

// Status is the lifecycle state of a card. Fresh, Active and Suspended are
// the only implementations.
type Status interface {
	Kind() StatusKind
	isStatus()
}

// Fresh is a card that has never been activated.
type Fresh struct{}

// Active is a card inside an access window.
type Active struct {
	ActivatedAt time.Time
	ExpiresAt   time.Time
}

// Suspended is a card whose window was closed early. Remaining is the
// banked time; zero means the card is fully consumed.
type Suspended struct {
	SuspendedAt time.Time
	Remaining   time.Duration
}

func (Fresh) Kind() StatusKind     { return StatusFresh }
func (Active) Kind() StatusKind    { return StatusActive }
func (Suspended) Kind() StatusKind { return StatusSuspended }

func (Fresh) isStatus()     {}
func (Active) isStatus()    {}
func (Suspended) isStatus() {}

// Window returns the length of the access window.
func (a Active) Window() time.Duration {
	return a.ExpiresAt.Sub(a.ActivatedAt)
}

// HasBalance reports whether the suspended card can be resumed.
func (s Suspended) HasBalance() bool {
	return s.Remaining > 0
}
