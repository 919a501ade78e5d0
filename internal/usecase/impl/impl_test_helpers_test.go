package impl

import "log/slog"

// testLogger returns a logger that swallows everything, keeping test output
// readable.
func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
