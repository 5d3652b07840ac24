package handler

import (
	"net/http"
	"time"

	"github.com/welcomeboard/welcomeboard/internal/views"
)

// publishView records a payload render as a fire-and-forget view event.
// publisher may be nil when the pipeline is disabled.
func publishView(publisher *views.Publisher, payloadKey string, r *http.Request) {
	if publisher == nil {
		return
	}

	now := time.Now()
	publisher.PublishAsync(views.ViewEventPayload{
		PayloadKey:  payloadKey,
		VisitorHash: views.GenerateVisitorHash(r.RemoteAddr, r.UserAgent(), now),
		ViewedAt:    now.UnixMilli(),
	})
}
