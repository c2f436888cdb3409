//go:build unit

package card_test

import (
	"testing"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = builder.BaseTime

func TestNewCard(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		c, err := card.NewCard(id, "123456789", card.Value500, t0)
		require.NoError(t, err)

		assert.Equal(t, id, c.ID())
		assert.Equal(t, "123456789", c.SerialNumber())
		assert.Equal(t, card.Value500, c.FaceValue())
		assert.Equal(t, 72, c.DurationHours())
		assert.Equal(t, card.StatusFresh, c.StatusKind())
		assert.Equal(t, t0, c.CreatedAt())
		assert.False(t, c.IsActive())
		assert.False(t, c.IsConsumed())
	})

	t.Run("duration follows face value", func(t *testing.T) {
		for value, hours := range map[card.FaceValue]int{card.Value200: 24, card.Value500: 72, card.Value1000: 168} {
			c, err := card.NewCard(uuid.New(), "123456789", value, t0)
			require.NoError(t, err)
			assert.Equal(t, hours, c.DurationHours(), "value %d", value)
			assert.Equal(t, time.Duration(hours)*time.Hour, c.Duration())
		}
	})

	t.Run("nil id falls back to a time-ordered id", func(t *testing.T) {
		first, err := card.NewCard(uuid.Nil, "123456789", card.Value200, t0)
		require.NoError(t, err)
		second, err := card.NewCard(uuid.Nil, "223456789", card.Value200, t0)
		require.NoError(t, err)

		assert.Equal(t, uuid.Version(7), first.ID().Version())
		assert.Less(t, first.ID().String(), second.ID().String())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := card.NewCard(uuid.New(), "012345678", card.Value200, t0)
		require.ErrorIs(t, err, card.ErrInvalidSerial)

		_, err = card.NewCard(uuid.New(), "123456789", card.FaceValue(300), t0)
		require.ErrorIs(t, err, card.ErrInvalidValue)
	})
}

func TestReconstructCard(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.CardBuilder)
		errIs  error
	}{
		{name: "fresh", mutate: func(b *builder.CardBuilder) {}},
		{name: "active", mutate: func(b *builder.CardBuilder) { b.AsActive(t0, 24*time.Hour) }},
		{name: "suspended with balance", mutate: func(b *builder.CardBuilder) { b.AsSuspended(t0, time.Hour) }},
		{name: "consumed", mutate: func(b *builder.CardBuilder) { b.AsSuspended(t0, 0) }},
		{name: "stored duration kept", mutate: func(b *builder.CardBuilder) { b.WithDurationHours(48) }},
		{name: "non-positive duration", mutate: func(b *builder.CardBuilder) { b.WithDurationHours(0) }, errIs: card.ErrInvalidDuration},
		{name: "short serial", mutate: func(b *builder.CardBuilder) { b.WithSerial("12345") }, errIs: card.ErrInvalidSerial},
		{name: "non numeric serial", mutate: func(b *builder.CardBuilder) { b.WithSerial("12345678a") }, errIs: card.ErrInvalidSerial},
		{name: "unknown face value", mutate: func(b *builder.CardBuilder) { b.Value = 100 }, errIs: card.ErrInvalidValue},
		{name: "negative remaining", mutate: func(b *builder.CardBuilder) { b.AsSuspended(t0, -time.Second) }, errIs: card.ErrInvalidStatus},
		{name: "expiry before activation", mutate: func(b *builder.CardBuilder) { b.AsActive(t0, -time.Hour) }, errIs: card.ErrInvalidStatus},
		{name: "nil status", mutate: func(b *builder.CardBuilder) { b.Status = nil }, errIs: card.ErrInvalidStatus},
		{name: "full window", mutate: func(b *builder.CardBuilder) { b.AsActive(t0, 24*time.Hour) }},
		{name: "window longer than duration", mutate: func(b *builder.CardBuilder) { b.AsActive(t0, 24*time.Hour+time.Millisecond) }, errIs: card.ErrInvalidStatus},
		{name: "full duration banked", mutate: func(b *builder.CardBuilder) { b.AsSuspended(t0, 24*time.Hour) }},
		{name: "banked time longer than duration", mutate: func(b *builder.CardBuilder) { b.AsSuspended(t0, 24*time.Hour+time.Millisecond) }, errIs: card.ErrInvalidStatus},
		{name: "banked time bounded by stored duration", mutate: func(b *builder.CardBuilder) { b.WithDurationHours(12).AsSuspended(t0, 13*time.Hour) }, errIs: card.ErrInvalidStatus},
		{name: "nil id", mutate: func(b *builder.CardBuilder) { b.ID = uuid.Nil }, errIs: card.ErrInvalidID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.NewCardBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestActivate(t *testing.T) {
	t.Run("fresh card opens a full window", func(t *testing.T) {
		c := builder.NewCardBuilder().WithValue(200).MustBuild()

		require.NoError(t, c.Activate(t0))

		want := card.Active{ActivatedAt: t0, ExpiresAt: t0.Add(24 * time.Hour)}
		if diff := cmp.Diff(card.Status(want), c.Status()); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("suspended card resumes with banked time", func(t *testing.T) {
		c := builder.NewCardBuilder().AsSuspended(t0, 10*time.Hour).MustBuild()
		now := t0.Add(48 * time.Hour)

		require.NoError(t, c.Activate(now))

		want := card.Active{ActivatedAt: now, ExpiresAt: now.Add(10 * time.Hour)}
		if diff := cmp.Diff(card.Status(want), c.Status()); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("errors leave the card unchanged", func(t *testing.T) {
		tests := []struct {
			name  string
			card  card.Card
			errIs error
		}{
			{"already active", builder.NewCardBuilder().AsActive(t0, time.Hour).MustBuild(), card.ErrAlreadyActive},
			{"consumed", builder.NewCardBuilder().AsSuspended(t0, 0).MustBuild(), card.ErrNothingToActivate},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				before := tc.card.Status()
				err := tc.card.Activate(t0.Add(time.Minute))
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, before, tc.card.Status())
			})
		}
	})
}

func TestSuspend(t *testing.T) {
	t.Run("banks the unused part of the window", func(t *testing.T) {
		c := builder.NewCardBuilder().AsActive(t0, 24*time.Hour).MustBuild()
		now := t0.Add(10 * time.Hour)

		require.NoError(t, c.Suspend(now))

		want := card.Suspended{SuspendedAt: now, Remaining: 14 * time.Hour}
		if diff := cmp.Diff(card.Status(want), c.Status()); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, c.IsConsumed())
	})

	t.Run("lapsed window banks zero", func(t *testing.T) {
		c := builder.NewCardBuilder().AsActive(t0, 24*time.Hour).MustBuild()

		require.NoError(t, c.Suspend(t0.Add(30*time.Hour)))

		s, ok := c.Status().(card.Suspended)
		require.True(t, ok)
		assert.Zero(t, s.Remaining)
		assert.True(t, c.IsConsumed())
	})

	t.Run("clock behind activation banks at most the window", func(t *testing.T) {
		c := builder.NewCardBuilder().AsActive(t0, 24*time.Hour).MustBuild()

		require.NoError(t, c.Suspend(t0.Add(-time.Hour)))

		s := c.Status().(card.Suspended)
		assert.Equal(t, 24*time.Hour, s.Remaining)
	})

	t.Run("only active cards", func(t *testing.T) {
		for _, c := range []card.Card{
			builder.NewCardBuilder().MustBuild(),
			builder.NewCardBuilder().AsSuspended(t0, time.Hour).MustBuild(),
			builder.NewCardBuilder().AsSuspended(t0, 0).MustBuild(),
		} {
			before := c.Status()
			require.ErrorIs(t, c.Suspend(t0), card.ErrNotActive)
			assert.Equal(t, before, c.Status())
		}
	})
}

func TestResume(t *testing.T) {
	t.Run("suspended with balance", func(t *testing.T) {
		c := builder.NewCardBuilder().AsSuspended(t0, 90*time.Minute).MustBuild()
		now := t0.Add(time.Hour)

		require.NoError(t, c.Resume(now))

		a, ok := c.Status().(card.Active)
		require.True(t, ok)
		assert.Equal(t, now, a.ActivatedAt)
		assert.Equal(t, now.Add(90*time.Minute), a.ExpiresAt)
	})

	t.Run("never starts a new window", func(t *testing.T) {
		for name, c := range map[string]card.Card{
			"fresh":    builder.NewCardBuilder().MustBuild(),
			"active":   builder.NewCardBuilder().AsActive(t0, time.Hour).MustBuild(),
			"consumed": builder.NewCardBuilder().AsSuspended(t0, 0).MustBuild(),
		} {
			t.Run(name, func(t *testing.T) {
				require.ErrorIs(t, c.Resume(t0), card.ErrNoRemainingBalance)
			})
		}
	})
}

func TestRemainingAt(t *testing.T) {
	fresh := builder.NewCardBuilder().WithValue(1000).MustBuild()
	active := builder.NewCardBuilder().AsActive(t0, 24*time.Hour).MustBuild()
	suspended := builder.NewCardBuilder().AsSuspended(t0, 5*time.Hour).MustBuild()

	assert.Equal(t, 168*time.Hour, fresh.RemainingAt(t0))
	assert.Equal(t, 20*time.Hour, active.RemainingAt(t0.Add(4*time.Hour)))
	assert.Zero(t, active.RemainingAt(t0.Add(25*time.Hour)))
	assert.Equal(t, 5*time.Hour, suspended.RemainingAt(t0.Add(100*time.Hour)))

	assert.False(t, active.IsLapsed(t0.Add(23*time.Hour)))
	assert.True(t, active.IsLapsed(t0.Add(24*time.Hour)))
	assert.True(t, active.IsActive(), "a lapsed card stays active until suspended")
	assert.False(t, suspended.IsLapsed(t0.Add(100*time.Hour)))
}

func TestSuspendResumeCycle(t *testing.T) {
	c := builder.NewCardBuilder().WithValue(200).MustBuild()

	require.NoError(t, c.Activate(t0))
	require.NoError(t, c.Suspend(t0.Add(4*time.Hour)))
	require.NoError(t, c.Resume(t0.Add(10*time.Hour)))
	require.NoError(t, c.Suspend(t0.Add(16*time.Hour)))

	s := c.Status().(card.Suspended)
	assert.Equal(t, 14*time.Hour, s.Remaining, "used 4h + 6h of 24h")

	require.NoError(t, c.Activate(t0.Add(20*time.Hour)))
	assert.Equal(t, 14*time.Hour, c.RemainingAt(t0.Add(20*time.Hour)))
}
