package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/welcomeboard/welcomeboard/internal/model"
)

// BulkInsertViewEvents inserts a batch of view events in a single round trip.
// Used by the view event worker; duplicate IDs are skipped so redelivered
// stream messages stay idempotent.
func (r *Repository) BulkInsertViewEvents(ctx context.Context, events []*model.ViewEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO view_events (id, payload_key, visitor_hash, viewed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	for _, event := range events {
		batch.Queue(query,
			event.ID,
			event.PayloadKey,
			event.VisitorHash,
			event.ViewedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range events {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert view event: %w", err)
		}
	}

	return nil
}

// CountViewsByPayload returns view counts grouped by payload key.
func (r *Repository) CountViewsByPayload(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT payload_key, COUNT(*)
		FROM view_events
		GROUP BY payload_key
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan view count: %w", err)
		}
		counts[key] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate view counts: %w", err)
	}

	return counts, nil
}
