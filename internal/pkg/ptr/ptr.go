package ptr

import "time"

func To[T any](v T) *T {
	return &v
}

// Time returns nil for the zero time so optional timestamps encode as null.
func Time(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func Millis(d time.Duration) *int64 {
	ms := d.Milliseconds()
	return &ms
}
