package shift

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// runAsync is swapped for a synchronous runner in tests.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine with its own timeout. The request that
// triggered it has already been answered, so failures are only logged.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("async operation succeeded", "op", op)
	}()
}
