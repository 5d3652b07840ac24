package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/welcomeboard/welcomeboard/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clockAt(hour int) service.Clock {
	return func() time.Time {
		return time.Date(2024, time.March, 15, hour, 30, 0, 0, time.UTC)
	}
}

func TestWelcome(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		greeting string
	}{
		{"morning", 9, "Good morning!"},
		{"afternoon", 14, "Good afternoon!"},
		{"evening", 21, "Good evening!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewWelcomeService(clockAt(tt.hour), nil)
			h := NewWelcomeHandler(svc, nil, testLogger())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/welcome", nil)
			rec := httptest.NewRecorder()

			h.Welcome(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if got := body["greeting"]; got != tt.greeting {
				t.Errorf("expected greeting %q, got %q", tt.greeting, got)
			}
			if len(body) != 1 {
				t.Errorf("expected a single greeting field, got %v", body)
			}
		})
	}
}
