package response

import "netcard-manager/internal/usecase/readmodel"

// CardResponse carries a warning when the change was applied but could not
// be saved.
type CardResponse struct {
	Card    *readmodel.CardRM `json:"card"`
	Warning string            `json:"warning,omitempty"`
}

type CardListResponse struct {
	Cards   []*readmodel.CardRM `json:"cards"`
	Count   int                 `json:"count"`
	Warning string              `json:"warning,omitempty"`
}

type CardStatsResponse struct {
	Stats *readmodel.CardStatsRM `json:"stats"`
}

func NewCardList(cards []*readmodel.CardRM, warning string) *CardListResponse {
	if cards == nil {
		cards = []*readmodel.CardRM{}
	}
	return &CardListResponse{Cards: cards, Count: len(cards), Warning: warning}
}
