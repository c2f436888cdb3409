//go:build unit

package card_test

import (
	"testing"
	"time"

	"netcard-manager/internal/domain/card"
	"netcard-manager/tests/common/builder"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	cards := []card.Card{
		builder.NewCardBuilder().WithSerial("100000001").WithValue(200).MustBuild(),
		builder.NewCardBuilder().WithSerial("100000002").WithValue(200).AsActive(t0, 24*time.Hour).MustBuild(),
		builder.NewCardBuilder().WithSerial("100000003").WithValue(1000).AsActive(t0, time.Minute).MustBuild(),
		builder.NewCardBuilder().WithSerial("100000004").WithValue(1000).AsSuspended(t0, time.Hour).MustBuild(),
	}

	tests := []struct {
		name  string
		cards []card.Card
		want  card.Stats
	}{
		{
			name:  "empty collection lists every denomination",
			cards: nil,
			want: card.Stats{ByValue: map[card.FaceValue]int{
				card.Value200: 0, card.Value500: 0, card.Value1000: 0,
			}},
		},
		{
			name:  "counts by state and value",
			cards: cards,
			want: card.Stats{
				Total:    4,
				Active:   2,
				Inactive: 2,
				ByValue: map[card.FaceValue]int{
					card.Value200: 2, card.Value500: 0, card.Value1000: 2,
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := card.Summarize(tc.cards)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
