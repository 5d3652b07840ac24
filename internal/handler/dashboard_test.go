package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/welcomeboard/welcomeboard/internal/metrics"
	"github.com/welcomeboard/welcomeboard/internal/registry"
	"github.com/welcomeboard/welcomeboard/internal/service"
)

func TestDashboard(t *testing.T) {
	welcomeSvc := service.NewWelcomeService(clockAt(10), nil)
	profileSvc := service.NewProfileService(nil, nil, 0, testLogger(), nil)

	reg := registry.New()
	if err := reg.Register(registry.KeyWelcomeMessage, func(ctx context.Context) (any, error) {
		return welcomeSvc.WelcomePayload(ctx), nil
	}); err != nil {
		t.Fatalf("register welcome provider: %v", err)
	}
	if err := reg.Register(registry.KeyUserProfile, func(ctx context.Context) (any, error) {
		return profileSvc.ProfilePayload(ctx), nil
	}); err != nil {
		t.Fatalf("register profile provider: %v", err)
	}

	recorder := metrics.NewInMemory()
	h := NewDashboardHandler(reg, nil, recorder, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 payloads, got %d: %v", len(body), body)
	}

	welcome, ok := body["welcome_message"]
	if !ok {
		t.Fatal("response missing welcome_message payload")
	}
	if welcome["greeting"] != "Good morning!" {
		t.Errorf("expected morning greeting, got %q", welcome["greeting"])
	}

	profile, ok := body["user_profile"]
	if !ok {
		t.Fatal("response missing user_profile payload")
	}
	if profile["username"] != "John Doe" {
		t.Errorf("expected default username, got %q", profile["username"])
	}
	if profile["user_role"] != "Administrator" {
		t.Errorf("expected default role, got %q", profile["user_role"])
	}

	snap := recorder.Snapshot()
	if snap.DashboardRendered != 1 {
		t.Errorf("expected 1 dashboard render, got %d", snap.DashboardRendered)
	}
	if snap.RenderDurationCount != 1 {
		t.Errorf("expected 1 duration observation, got %d", snap.RenderDurationCount)
	}
}

func TestDashboardProviderError(t *testing.T) {
	reg := registry.New()
	if err := reg.Register("broken", func(ctx context.Context) (any, error) {
		return nil, errors.New("backend down")
	}); err != nil {
		t.Fatalf("register provider: %v", err)
	}

	h := NewDashboardHandler(reg, nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Code != "RENDER_FAILED" {
		t.Errorf("expected code RENDER_FAILED, got %q", body.Code)
	}
}
