package model

import "time"

// ViewEvent records a single payload render for analytics.
type ViewEvent struct {
	ID          string    `json:"id"`
	PayloadKey  string    `json:"payload_key"`
	VisitorHash string    `json:"visitor_hash"`
	ViewedAt    time.Time `json:"viewed_at"`
}
