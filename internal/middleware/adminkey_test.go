package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/welcomeboard/welcomeboard/internal/auth"
)

func adminHandler(t *testing.T, keyHash string) http.Handler {
	t.Helper()
	cfg := AdminKeyConfig{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		KeyHash: keyHash,
	}
	return AdminKey(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminKey_ValidKey(t *testing.T) {
	key := "operator-key-for-tests"
	hash, err := auth.HashKey(key)
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}

	handler := adminHandler(t, hash)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+key)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestAdminKey_MissingKey(t *testing.T) {
	hash, err := auth.HashKey("operator-key")
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}

	handler := adminHandler(t, hash)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/profile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAdminKey_WrongKey(t *testing.T) {
	hash, err := auth.HashKey("operator-key")
	if err != nil {
		t.Fatalf("hash key: %v", err)
	}

	handler := adminHandler(t, hash)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer not-the-key")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestExtractAdminKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := extractAdminKey(req); got != "" {
		t.Errorf("expected empty key, got %q", got)
	}

	req.Header.Set("Authorization", "Bearer abc123")
	if got := extractAdminKey(req); got != "abc123" {
		t.Errorf("expected abc123, got %q", got)
	}

	req.Header.Set("Authorization", "rawkey")
	if got := extractAdminKey(req); got != "rawkey" {
		t.Errorf("expected rawkey, got %q", got)
	}
}
