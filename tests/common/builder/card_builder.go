//go:build unit || e2e

package builder

import (
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var BaseTime = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

type CardBuilder struct {
	ID            uuid.UUID
	Serial        string
	Value         int
	DurationHours int
	Status        card.Status
	CreatedAt     time.Time
}

func NewCardBuilder() *CardBuilder {
	return &CardBuilder{
		ID:            uuid.MustParse("0194b0a4-5c00-7000-8000-000000000001"),
		Serial:        "123456789",
		Value:         200,
		DurationHours: 24,
		Status:        card.Fresh{},
		CreatedAt:     BaseTime,
	}
}

func (b *CardBuilder) With(mutate func(*CardBuilder)) *CardBuilder {
	mutate(b)
	return b
}

func (b *CardBuilder) WithSerial(serial string) *CardBuilder {
	b.Serial = serial
	return b
}

// WithValue also sets the duration the face value maps to.
func (b *CardBuilder) WithValue(value int) *CardBuilder {
	b.Value = value
	if fv, err := card.NewFaceValue(value); err == nil {
		b.DurationHours = fv.DurationHours()
	}
	return b
}

func (b *CardBuilder) WithDurationHours(hours int) *CardBuilder {
	b.DurationHours = hours
	return b
}

func (b *CardBuilder) AsActive(activatedAt time.Time, window time.Duration) *CardBuilder {
	b.Status = card.Active{ActivatedAt: activatedAt, ExpiresAt: activatedAt.Add(window)}
	return b
}

func (b *CardBuilder) AsSuspended(suspendedAt time.Time, remaining time.Duration) *CardBuilder {
	b.Status = card.Suspended{SuspendedAt: suspendedAt, Remaining: remaining}
	return b
}

func (b *CardBuilder) BuildDomain() (*card.Card, error) {
	return card.ReconstructCard(b.ID, b.Serial, card.FaceValue(b.Value), b.DurationHours, b.Status, b.CreatedAt)
}

// MustBuild panics on invalid builder state. Tests only.
func (b *CardBuilder) MustBuild() card.Card {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return *c
}

func (b *CardBuilder) BuildReadModel(now time.Time) *readmodel.CardRM {
	rm, err := readmodel.FromCard(b.MustBuild(), now)
	if err != nil {
		panic(err)
	}
	return rm
}
