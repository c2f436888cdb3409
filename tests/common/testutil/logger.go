//go:build unit || e2e

package testutil

import "log/slog"

func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
