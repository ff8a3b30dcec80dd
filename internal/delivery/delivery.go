// Package delivery defines what every transport server exposes to main.
package delivery

import "context"

// Delivery is a long-running server started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
