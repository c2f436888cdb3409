package cardrepo

import "errors"

// PersistWarning is returned alongside a successful mutation whose snapshot
// could not be saved. The in-memory collection already holds the change.
type PersistWarning struct {
	Err error
}

func (w *PersistWarning) Error() string {
	return "card state kept in memory, snapshot not saved: " + w.Err.Error()
}

func (w *PersistWarning) Unwrap() error {
	return w.Err
}

func IsPersistWarning(err error) bool {
	var w *PersistWarning
	return errors.As(err, &w)
}
