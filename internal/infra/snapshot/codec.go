package snapshot

import (
	"encoding/json"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/pkg/errs"
	"netcard-manager/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Record is the stored shape of one card. Optional fields encode as null.
// LegacyValue reads snapshots written before the face value key was renamed;
// it is never written.
type Record struct {
	ID              uuid.UUID  `json:"id"`
	SerialNumber    string     `json:"serialNumber"`
	FaceValue       int        `json:"faceValue"`
	LegacyValue     *int       `json:"value,omitempty"`
	DurationHours   int        `json:"durationHours"`
	IsActive        bool       `json:"isActive"`
	ActivatedAt     *Timestamp `json:"activatedAt"`
	ExpiresAt       *Timestamp `json:"expiresAt"`
	RemainingTimeMs *int64     `json:"remainingTimeMs"`
	SuspendedAt     *Timestamp `json:"suspendedAt"`
	CreatedAt       *Timestamp `json:"createdAt,omitempty"`
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp always encodes in UTC with millisecond precision.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(timestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var parsed time.Time
	if err := parsed.UnmarshalJSON(b); err != nil {
		return err
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

func stamp(t time.Time) *Timestamp {
	if t.IsZero() {
		return nil
	}
	ts := Timestamp(t)
	return &ts
}

func timeOf(ts *Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return time.Time(*ts)
}

type JSONCodec struct{}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (JSONCodec) Encode(cards []card.Card) ([]byte, error) {
	records := make([]Record, len(cards))
	for i := range cards {
		records[i] = ToRecord(&cards[i])
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errs.Wrap(err, "marshal card records")
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte) ([]card.Card, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "unmarshal card records")
	}

	cards := make([]card.Card, 0, len(records))
	for i, rec := range records {
		c, err := FromRecord(rec)
		if err != nil {
			return nil, errs.Wrapf(err, "record %d (serial %q)", i, rec.SerialNumber)
		}
		cards = append(cards, *c)
	}
	return cards, nil
}

func ToRecord(c *card.Card) Record {
	rec := Record{
		ID:            c.ID(),
		SerialNumber:  c.SerialNumber(),
		FaceValue:     c.FaceValue().Int(),
		DurationHours: c.DurationHours(),
		CreatedAt:     stamp(c.CreatedAt()),
	}

	switch s := c.Status().(type) {
	case card.Active:
		rec.IsActive = true
		rec.ActivatedAt = stamp(s.ActivatedAt)
		rec.ExpiresAt = stamp(s.ExpiresAt)
	case card.Suspended:
		rec.SuspendedAt = stamp(s.SuspendedAt)
		rec.RemainingTimeMs = ptr.Millis(s.Remaining)
	}
	return rec
}

func FromRecord(rec Record) (*card.Card, error) {
	status, err := statusOf(rec)
	if err != nil {
		return nil, err
	}
	value := rec.FaceValue
	if value == 0 && rec.LegacyValue != nil {
		value = *rec.LegacyValue
	}
	return card.ReconstructCard(
		rec.ID,
		rec.SerialNumber,
		card.FaceValue(value),
		rec.DurationHours,
		status,
		timeOf(rec.CreatedAt),
	)
}

func statusOf(rec Record) (card.Status, error) {
	switch {
	case rec.IsActive:
		if rec.ActivatedAt == nil || rec.ExpiresAt == nil {
			return nil, card.ErrInvalidStatus
		}
		return card.Active{ActivatedAt: timeOf(rec.ActivatedAt), ExpiresAt: timeOf(rec.ExpiresAt)}, nil
	case rec.RemainingTimeMs != nil:
		if *rec.RemainingTimeMs < 0 {
			return nil, card.ErrInvalidStatus
		}
		return card.Suspended{
			SuspendedAt: timeOf(rec.SuspendedAt),
			Remaining:   time.Duration(*rec.RemainingTimeMs) * time.Millisecond,
		}, nil
	default:
		return card.Fresh{}, nil
	}
}
