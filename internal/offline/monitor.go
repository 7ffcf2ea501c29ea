package offline

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Probe reports whether the upstream API is reachable right now.
type Probe func(ctx context.Context) bool

// Monitor tracks connectivity for the station. It polls the probe on
// an interval and also accepts observed outcomes from the forwarder,
// so a failed forward flips the station offline without waiting for
// the next poll.
type Monitor struct {
	probe    Probe
	interval time.Duration
	online   atomic.Bool
	logger   *zap.Logger
}

func NewMonitor(probe Probe, interval time.Duration, logger *zap.Logger) *Monitor {
	m := &Monitor{probe: probe, interval: interval, logger: logger}
	// assume online until the first probe says otherwise
	m.online.Store(true)
	return m
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Observe records the outcome of an actual API call.
func (m *Monitor) Observe(ok bool) {
	m.set(ok)
}

func (m *Monitor) set(online bool) {
	if m.online.Swap(online) != online {
		if online {
			m.logger.Info("station back online")
		} else {
			m.logger.Warn("station offline, queueing verifications locally")
		}
	}
}

// Run polls until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.set(m.probe(ctx))
		}
	}
}
