// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/kolhub/kolhub/internal/shared/logger"
)

// Go runs fn in a new goroutine. A panic in fn is logged with its stack
// instead of crashing the process. The returned channel is closed once fn
// has returned or panicked.
func Go(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
