package readmodel

import (
	"strconv"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CardRM struct {
	ID              uuid.UUID  `json:"id"`
	SerialNumber    string     `json:"serial_number"`
	Value           int        `json:"value"`
	DurationHours   int        `json:"duration_hours"`
	Status          string     `json:"status"`
	IsActive        bool       `json:"is_active"`
	ActivatedAt     *time.Time `json:"activated_at"`
	ExpiresAt       *time.Time `json:"expires_at"`
	RemainingTimeMs *int64     `json:"remaining_time_ms"`
	SuspendedAt     *time.Time `json:"suspended_at"`
	CreatedAt       time.Time  `json:"created_at"`

	// Computed at read time.
	RemainingMs int64 `json:"remaining_ms"`
	Lapsed      bool  `json:"lapsed"`
	Consumed    bool  `json:"consumed"`
}

var copyOpt = copier.Option{CaseSensitive: true}

// FromCard builds the read model of c as seen at now.
func FromCard(c card.Card, now time.Time) (*CardRM, error) {
	rm := &CardRM{}
	// ID, SerialNumber, DurationHours and CreatedAt come from the getters.
	if err := copier.CopyWithOption(rm, &c, copyOpt); err != nil {
		return nil, err
	}

	rm.Value = c.FaceValue().Int()
	rm.Status = c.StatusKind().String()
	switch s := c.Status().(type) {
	case card.Active:
		rm.IsActive = true
		rm.ActivatedAt = ptr.To(s.ActivatedAt)
		rm.ExpiresAt = ptr.To(s.ExpiresAt)
	case card.Suspended:
		rm.SuspendedAt = ptr.Time(s.SuspendedAt)
		rm.RemainingTimeMs = ptr.Millis(s.Remaining)
	}
	rm.RemainingMs = c.RemainingAt(now).Milliseconds()
	rm.Lapsed = c.IsLapsed(now)
	rm.Consumed = c.IsConsumed()
	return rm, nil
}

func FromCards(cards []card.Card, now time.Time) ([]*CardRM, error) {
	out := make([]*CardRM, 0, len(cards))
	for _, c := range cards {
		rm, err := FromCard(c, now)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

type CardStatsRM struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByValue  map[string]int `json:"by_value"`
}

func FromStats(st card.Stats) *CardStatsRM {
	byValue := make(map[string]int, len(st.ByValue))
	for v, n := range st.ByValue {
		byValue[strconv.Itoa(v.Int())] = n
	}
	return &CardStatsRM{
		Total:    st.Total,
		Active:   st.Active,
		Inactive: st.Inactive,
		ByValue:  byValue,
	}
}
