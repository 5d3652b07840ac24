// Package service provides business logic for the application.
package service

import (
	"context"
	"time"

	"github.com/welcomeboard/welcomeboard/internal/greeting"
	"github.com/welcomeboard/welcomeboard/internal/metrics"
	"github.com/welcomeboard/welcomeboard/internal/model"
)

// Clock returns the current time. Injected so tests can pin the hour.
type Clock func() time.Time

// WelcomeService produces the welcome_message payload.
type WelcomeService struct {
	now     Clock
	metrics metrics.Recorder
}

// NewWelcomeService creates a new WelcomeService.
// Pass nil for clock to use wall-clock time.
func NewWelcomeService(clock Clock, recorder metrics.Recorder) *WelcomeService {
	if clock == nil {
		clock = time.Now
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &WelcomeService{
		now:     clock,
		metrics: recorder,
	}
}

// WelcomePayload returns the greeting payload for the current hour.
// Never fails: greeting selection is total.
func (s *WelcomeService) WelcomePayload(ctx context.Context) model.WelcomePayload {
	payload := model.WelcomePayload{
		Greeting: greeting.Select(s.now().Hour()),
	}
	s.metrics.IncWelcomeRendered()
	return payload
}
