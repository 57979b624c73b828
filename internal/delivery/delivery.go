// Package delivery holds the servers the binaries run.
package delivery

import (
	"context"
)

// Delivery is a long-running server started by a binary and stopped through its fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
