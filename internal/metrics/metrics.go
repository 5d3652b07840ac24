// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Payload render metrics
	IncWelcomeRendered()
	IncProfileRendered()
	IncDashboardRendered()
	ObserveRenderDuration(duration time.Duration)

	// Profile cache metrics
	IncProfileCacheHit()
	IncProfileCacheMiss()
	IncProfileFallback()

	// Profile management metrics
	IncProfileUpdated()

	// View event pipeline metrics
	IncViewEventPublished(status string) // status: "success" or "dropped"
	IncViewEventProcessed(status string) // status: "success", "failed", "skipped"
	SetViewQueueDepth(depth int64)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
