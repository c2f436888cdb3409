package request

// CreateCardsRequest leaves range checks to the domain so that an out of
// range count or value maps to the domain error, not a binding error.
type CreateCardsRequest struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

type SearchCardsQuery struct {
	Q string `form:"q"`
}

type RecentCardsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
