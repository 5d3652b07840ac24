//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/welcomeboard/welcomeboard/internal/model"
	"github.com/welcomeboard/welcomeboard/internal/testutil"
)

func newViewEventTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetViewEventsSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset view_events schema: %v", err)
	}

	return ctx, repo
}

func TestIntegrationViewEventRepository_BulkInsert(t *testing.T) {
	ctx, repo := newViewEventTestEnv(t)

	events := []*model.ViewEvent{
		testutil.NewTestViewEvent(t, "welcome_message"),
		testutil.NewTestViewEvent(t, "user_profile"),
		testutil.NewTestViewEvent(t, "welcome_message"),
	}
	// IDs must be distinct for all three rows to land.
	for i, event := range events {
		event.ID = fmt.Sprintf("%s-%d", testutil.UniqueID("event"), i)
	}

	if err := repo.BulkInsertViewEvents(ctx, events); err != nil {
		t.Fatalf("BulkInsertViewEvents failed: %v", err)
	}

	counts, err := repo.CountViewsByPayload(ctx)
	if err != nil {
		t.Fatalf("CountViewsByPayload failed: %v", err)
	}
	if counts["welcome_message"] != 2 {
		t.Errorf("welcome_message count: got %d, want 2", counts["welcome_message"])
	}
	if counts["user_profile"] != 1 {
		t.Errorf("user_profile count: got %d, want 1", counts["user_profile"])
	}
}

func TestIntegrationViewEventRepository_DuplicateIDsSkipped(t *testing.T) {
	ctx, repo := newViewEventTestEnv(t)

	event := testutil.NewTestViewEvent(t, "welcome_message")

	if err := repo.BulkInsertViewEvents(ctx, []*model.ViewEvent{event}); err != nil {
		t.Fatalf("BulkInsertViewEvents (first) failed: %v", err)
	}
	// Redelivered stream messages carry the same ID; insert must be a no-op.
	if err := repo.BulkInsertViewEvents(ctx, []*model.ViewEvent{event}); err != nil {
		t.Fatalf("BulkInsertViewEvents (redelivery) failed: %v", err)
	}

	counts, err := repo.CountViewsByPayload(ctx)
	if err != nil {
		t.Fatalf("CountViewsByPayload failed: %v", err)
	}
	if counts["welcome_message"] != 1 {
		t.Errorf("welcome_message count: got %d, want 1", counts["welcome_message"])
	}
}

func TestIntegrationViewEventRepository_EmptyBatch(t *testing.T) {
	ctx, repo := newViewEventTestEnv(t)

	if err := repo.BulkInsertViewEvents(ctx, nil); err != nil {
		t.Errorf("BulkInsertViewEvents with empty batch should be a no-op, got: %v", err)
	}
}
