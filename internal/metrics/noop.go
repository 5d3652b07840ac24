package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncWelcomeRendered is a no-op.
func (n *NoopRecorder) IncWelcomeRendered() {}

// IncProfileRendered is a no-op.
func (n *NoopRecorder) IncProfileRendered() {}

// IncDashboardRendered is a no-op.
func (n *NoopRecorder) IncDashboardRendered() {}

// ObserveRenderDuration is a no-op.
func (n *NoopRecorder) ObserveRenderDuration(duration time.Duration) {}

// IncProfileCacheHit is a no-op.
func (n *NoopRecorder) IncProfileCacheHit() {}

// IncProfileCacheMiss is a no-op.
func (n *NoopRecorder) IncProfileCacheMiss() {}

// IncProfileFallback is a no-op.
func (n *NoopRecorder) IncProfileFallback() {}

// IncProfileUpdated is a no-op.
func (n *NoopRecorder) IncProfileUpdated() {}

// IncViewEventPublished is a no-op.
func (n *NoopRecorder) IncViewEventPublished(status string) {}

// IncViewEventProcessed is a no-op.
func (n *NoopRecorder) IncViewEventProcessed(status string) {}

// SetViewQueueDepth is a no-op.
func (n *NoopRecorder) SetViewQueueDepth(depth int64) {}
