package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	WelcomeRendered       uint64
	ProfileRendered       uint64
	DashboardRendered     uint64
	RenderDurationCount   uint64
	RenderDurationTotalNs int64
	ProfileCacheHits      uint64
	ProfileCacheMisses    uint64
	ProfileFallbacks      uint64
	ProfilesUpdated       uint64
	ViewEventsPublished   uint64
	ViewEventsDropped     uint64
	ViewEventsProcessed   uint64
	ViewEventsFailed      uint64
	ViewQueueDepth        int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	welcomeRendered       uint64
	profileRendered       uint64
	dashboardRendered     uint64
	renderDurationCount   uint64
	renderDurationTotalNs int64
	profileCacheHits      uint64
	profileCacheMisses    uint64
	profileFallbacks      uint64
	profilesUpdated       uint64
	viewEventsPublished   uint64
	viewEventsDropped     uint64
	viewEventsProcessed   uint64
	viewEventsFailed      uint64
	viewQueueDepth        int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		WelcomeRendered:       atomic.LoadUint64(&m.welcomeRendered),
		ProfileRendered:       atomic.LoadUint64(&m.profileRendered),
		DashboardRendered:     atomic.LoadUint64(&m.dashboardRendered),
		RenderDurationCount:   atomic.LoadUint64(&m.renderDurationCount),
		RenderDurationTotalNs: atomic.LoadInt64(&m.renderDurationTotalNs),
		ProfileCacheHits:      atomic.LoadUint64(&m.profileCacheHits),
		ProfileCacheMisses:    atomic.LoadUint64(&m.profileCacheMisses),
		ProfileFallbacks:      atomic.LoadUint64(&m.profileFallbacks),
		ProfilesUpdated:       atomic.LoadUint64(&m.profilesUpdated),
		ViewEventsPublished:   atomic.LoadUint64(&m.viewEventsPublished),
		ViewEventsDropped:     atomic.LoadUint64(&m.viewEventsDropped),
		ViewEventsProcessed:   atomic.LoadUint64(&m.viewEventsProcessed),
		ViewEventsFailed:      atomic.LoadUint64(&m.viewEventsFailed),
		ViewQueueDepth:        atomic.LoadInt64(&m.viewQueueDepth),
	}
}

// IncWelcomeRendered increments the welcome payload counter.
func (m *InMemoryRecorder) IncWelcomeRendered() {
	atomic.AddUint64(&m.welcomeRendered, 1)
}

// IncProfileRendered increments the profile payload counter.
func (m *InMemoryRecorder) IncProfileRendered() {
	atomic.AddUint64(&m.profileRendered, 1)
}

// IncDashboardRendered increments the dashboard render counter.
func (m *InMemoryRecorder) IncDashboardRendered() {
	atomic.AddUint64(&m.dashboardRendered, 1)
}

// ObserveRenderDuration records a payload render duration.
func (m *InMemoryRecorder) ObserveRenderDuration(duration time.Duration) {
	atomic.AddUint64(&m.renderDurationCount, 1)
	atomic.AddInt64(&m.renderDurationTotalNs, duration.Nanoseconds())
}

// IncProfileCacheHit increments cache hit counter.
func (m *InMemoryRecorder) IncProfileCacheHit() {
	atomic.AddUint64(&m.profileCacheHits, 1)
}

// IncProfileCacheMiss increments cache miss counter.
func (m *InMemoryRecorder) IncProfileCacheMiss() {
	atomic.AddUint64(&m.profileCacheMisses, 1)
}

// IncProfileFallback increments the default-snapshot fallback counter.
func (m *InMemoryRecorder) IncProfileFallback() {
	atomic.AddUint64(&m.profileFallbacks, 1)
}

// IncProfileUpdated increments the profile update counter.
func (m *InMemoryRecorder) IncProfileUpdated() {
	atomic.AddUint64(&m.profilesUpdated, 1)
}

// IncViewEventPublished increments publish counters by status.
func (m *InMemoryRecorder) IncViewEventPublished(status string) {
	if status == "success" {
		atomic.AddUint64(&m.viewEventsPublished, 1)
		return
	}
	atomic.AddUint64(&m.viewEventsDropped, 1)
}

// IncViewEventProcessed increments processing counters by status.
func (m *InMemoryRecorder) IncViewEventProcessed(status string) {
	if status == "success" {
		atomic.AddUint64(&m.viewEventsProcessed, 1)
		return
	}
	atomic.AddUint64(&m.viewEventsFailed, 1)
}

// SetViewQueueDepth records the current stream depth.
func (m *InMemoryRecorder) SetViewQueueDepth(depth int64) {
	atomic.StoreInt64(&m.viewQueueDepth, depth)
}
