package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15

type Pinger interface {
	Ping(ctx context.Context) error
}

// MonitorBackendHealth probes the API root on a fixed interval and stores
// the result in healthy. The TUI reads the flag to render its
// online/offline indicator; analysis submits are never blocked by it.
func MonitorBackendHealth(ctx context.Context, pinger Pinger, healthy *atomic.Bool) {
	probe(ctx, pinger, healthy)

	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe(ctx, pinger, healthy)
		}
	}
}

func probe(ctx context.Context, pinger Pinger, healthy *atomic.Bool) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := pinger.Ping(probeCtx)
	healthy.Store(err == nil)
	if err != nil {
		slog.Warn("[HealthCheck] Backend is unreachable",
			slog.String("error", err.Error()))
	}
}
