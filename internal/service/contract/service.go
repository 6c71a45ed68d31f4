// Package contract defines the interfaces between the application's
// services, so they depend on behavior instead of each other.
package contract

import (
	"context"
	"sync"
)

// Service is a long-running application component started from main.
//
// Start must not block: it launches the service's goroutines and returns.
// The service shuts down when serviceStopCtx is canceled and calls
// serviceStopWG.Done exactly once after its resources are released,
// including when Start fails.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
