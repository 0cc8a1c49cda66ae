package scheduler

import (
	"context"
	"log"
	"time"

	"campustrack_backend/internals/features/academics/schedule_instances/service"
)

// StartInstanceMaterializer runs a materialization pass on a fixed
// cadence until ctx is canceled. One pass runs immediately at start so a
// restart does not wait a full interval. Pass failures are logged and
// retried on the next tick; they never crash the process.
func StartInstanceMaterializer(ctx context.Context, m *service.Materializer, interval time.Duration) {
	if interval <= 0 {
		interval = 20 * time.Second
	}

	go func() {
		log.Printf("[SCHEDULER] instance materializer started (every %s)", interval)

		runPass(ctx, m)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				runPass(ctx, m)
			case <-ctx.Done():
				log.Println("[SCHEDULER] instance materializer stopped")
				return
			}
		}
	}()
}

func runPass(ctx context.Context, m *service.Materializer) {
	sum, err := m.MaterializePass(ctx)
	if err != nil {
		log.Printf("[SCHEDULER ERROR] materialization pass failed: %v", err)
		return
	}
	if sum.Created > 0 || sum.Failed > 0 {
		log.Printf("[SCHEDULER] materialization pass: %s", sum)
	}
}
