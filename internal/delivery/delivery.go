// Package delivery defines the shared contract for all transport servers.
package delivery

import "context"

// Delivery is implemented by every server the application can run. Serve
// blocks until the server stops; shutdown is handled through fx lifecycle
// hooks registered by the implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
