// Package delivery defines the contract every transport implementation
// (HTTP, workers) exposes to the application runner.
package delivery

import "context"

// Delivery is a long-running transport endpoint. Serve blocks until the
// endpoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
