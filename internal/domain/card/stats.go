package card

// Stats summarizes a card collection for the admin dashboard.
type Stats struct {
	Total    int
	Active   int
	Inactive int
	ByValue  map[FaceValue]int
}

func Summarize(cards []Card) Stats {
	st := Stats{ByValue: make(map[FaceValue]int, len(durationHoursByValue))}
	for _, v := range FaceValues() {
		st.ByValue[v] = 0
	}
	for i := range cards {
		st.Total++
		if cards[i].IsActive() {
			st.Active++
		}
		st.ByValue[cards[i].FaceValue()]++
	}
	st.Inactive = st.Total - st.Active
	return st
}
