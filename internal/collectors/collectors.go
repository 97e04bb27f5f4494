package collectors

import (
	"context"
	"time"

	"github.com/mcirin3/sports-info/internal/logging"
)

// CollectFunc performs one fetch-normalize-publish pass.
type CollectFunc func(context.Context) error

// RunLoop runs fn immediately and then on every tick until ctx is done.
// Failures are logged and the loop keeps going; transient upstream errors
// must not kill a collector.
func RunLoop(ctx context.Context, name string, interval time.Duration, fn CollectFunc) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	run := func() {
		if err := fn(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Errorf("[%s] collect failed: %v", name, err)
		}
	}

	run()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
