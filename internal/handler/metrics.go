package handler

import (
	"fmt"
	"net/http"

	"github.com/welcomeboard/welcomeboard/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "welcomeboard_welcome_rendered_total %d\n", snap.WelcomeRendered)
	writeMetric(w, "welcomeboard_profile_rendered_total %d\n", snap.ProfileRendered)
	writeMetric(w, "welcomeboard_dashboard_rendered_total %d\n", snap.DashboardRendered)
	writeMetric(w, "welcomeboard_render_duration_seconds_count %d\n", snap.RenderDurationCount)
	writeMetric(w, "welcomeboard_render_duration_seconds_sum %.6f\n", float64(snap.RenderDurationTotalNs)/1e9)

	writeMetric(w, "welcomeboard_profile_cache_hits_total %d\n", snap.ProfileCacheHits)
	writeMetric(w, "welcomeboard_profile_cache_misses_total %d\n", snap.ProfileCacheMisses)
	writeMetric(w, "welcomeboard_profile_fallbacks_total %d\n", snap.ProfileFallbacks)
	writeMetric(w, "welcomeboard_profiles_updated_total %d\n", snap.ProfilesUpdated)

	writeMetric(w, "welcomeboard_view_events_published_total{status=\"success\"} %d\n", snap.ViewEventsPublished)
	writeMetric(w, "welcomeboard_view_events_published_total{status=\"dropped\"} %d\n", snap.ViewEventsDropped)
	writeMetric(w, "welcomeboard_view_events_processed_total{status=\"success\"} %d\n", snap.ViewEventsProcessed)
	writeMetric(w, "welcomeboard_view_events_processed_total{status=\"failed\"} %d\n", snap.ViewEventsFailed)
	writeMetric(w, "welcomeboard_view_queue_depth %d\n", snap.ViewQueueDepth)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
