// Package delivery defines the transports started by the application.
package delivery

import "context"

// Delivery is a long-running transport such as the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
