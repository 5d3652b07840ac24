package views

import (
	"errors"
	"time"
)

// Validation errors for view event payloads.
var (
	ErrMissingPayloadKey  = errors.New("payload key is required")
	ErrMissingVisitorHash = errors.New("visitor hash is required")
	ErrInvalidTimestamp   = errors.New("viewed_at timestamp is invalid")
)

// maxEventAge rejects events older than this; they are likely replays of a
// stale stream after long downtime.
const maxEventAge = 7 * 24 * time.Hour

// ValidateViewEventPayload checks a payload before it is persisted.
func ValidateViewEventPayload(payload ViewEventPayload) error {
	if payload.PayloadKey == "" {
		return ErrMissingPayloadKey
	}
	if payload.VisitorHash == "" {
		return ErrMissingVisitorHash
	}
	if payload.ViewedAt <= 0 {
		return ErrInvalidTimestamp
	}

	viewedAt := time.UnixMilli(payload.ViewedAt)
	now := time.Now()
	if viewedAt.After(now.Add(time.Minute)) {
		return ErrInvalidTimestamp
	}
	if now.Sub(viewedAt) > maxEventAge {
		return ErrInvalidTimestamp
	}

	return nil
}
