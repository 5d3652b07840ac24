package views

import (
	"errors"
	"testing"
	"time"
)

func validPayload() ViewEventPayload {
	return ViewEventPayload{
		PayloadKey:  "welcome_message",
		VisitorHash: "a1b2c3d4e5f60718",
		ViewedAt:    time.Now().UnixMilli(),
	}
}

func TestValidateViewEventPayload_Valid(t *testing.T) {
	if err := ValidateViewEventPayload(validPayload()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateViewEventPayload_MissingKey(t *testing.T) {
	payload := validPayload()
	payload.PayloadKey = ""

	err := ValidateViewEventPayload(payload)
	if !errors.Is(err, ErrMissingPayloadKey) {
		t.Errorf("expected ErrMissingPayloadKey, got %v", err)
	}
}

func TestValidateViewEventPayload_MissingVisitorHash(t *testing.T) {
	payload := validPayload()
	payload.VisitorHash = ""

	err := ValidateViewEventPayload(payload)
	if !errors.Is(err, ErrMissingVisitorHash) {
		t.Errorf("expected ErrMissingVisitorHash, got %v", err)
	}
}

func TestValidateViewEventPayload_BadTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		viewedAt int64
	}{
		{"zero", 0},
		{"negative", -1},
		{"far future", time.Now().Add(time.Hour).UnixMilli()},
		{"too old", time.Now().Add(-8 * 24 * time.Hour).UnixMilli()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload.ViewedAt = tt.viewedAt

			err := ValidateViewEventPayload(payload)
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Errorf("expected ErrInvalidTimestamp, got %v", err)
			}
		})
	}
}
