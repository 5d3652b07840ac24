package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/welcomeboard/welcomeboard/internal/cache"
	"github.com/welcomeboard/welcomeboard/internal/metrics"
	"github.com/welcomeboard/welcomeboard/internal/model"
	"github.com/welcomeboard/welcomeboard/internal/repository"
)

// Service errors.
var (
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrEmptyRole     = errors.New("role must not be empty")
	ErrEmptyJoinDate = errors.New("join_date must not be empty")
	ErrFieldTooLong  = errors.New("field exceeds maximum length")
)

const (
	maxFieldLength = 200
	maxBioLength   = 2000
)

// ProfileService serves the user_profile payload.
// Read path is cache -> database -> built-in default; it never returns an
// error so the rendering layer always has a snapshot to bind.
type ProfileService struct {
	repo     *repository.Repository
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewProfileService creates a new ProfileService.
// repo and cache may be nil; missing backends degrade to the default snapshot.
func NewProfileService(repo *repository.Repository, cacheClient *cache.Cache, cacheTTL time.Duration, logger *slog.Logger, recorder metrics.Recorder) *ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultProfileTTL
	}
	return &ProfileService{
		repo:     repo,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  recorder,
	}
}

// GetProfileSnapshot returns the current snapshot.
// Cache and database failures are logged and degrade to the built-in default.
func (s *ProfileService) GetProfileSnapshot(ctx context.Context) *model.ProfileSnapshot {
	// Cache first
	if s.cache != nil {
		cached, err := s.cache.GetProfile(ctx)
		if err == nil {
			s.metrics.IncProfileCacheHit()
			return cached
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("profile cache read failed", "error", err)
		}
		s.metrics.IncProfileCacheMiss()
	}

	// Database
	if s.repo != nil {
		profile, err := s.repo.GetProfile(ctx)
		if err == nil {
			s.writeBack(ctx, profile)
			return profile
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			s.logger.Warn("profile database read failed", "error", err)
		}
	}

	// Built-in default
	s.metrics.IncProfileFallback()
	return model.DefaultProfileSnapshot()
}

// ProfilePayload returns the user_profile payload for the rendering layer.
func (s *ProfileService) ProfilePayload(ctx context.Context) model.ProfilePayload {
	payload := s.GetProfileSnapshot(ctx).ToPayload()
	s.metrics.IncProfileRendered()
	return payload
}

// UpdateProfileInput defines input for replacing the stored snapshot.
type UpdateProfileInput struct {
	Username string
	Role     string
	JoinDate string
	Bio      string
}

// UpdateProfile replaces the stored snapshot and invalidates the cache.
func (s *ProfileService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*model.ProfileSnapshot, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, errors.New("profile storage not configured")
	}

	now := time.Now().UTC()

	// Reuse the existing row ID so the table keeps a single current snapshot.
	profile := &model.ProfileSnapshot{
		ID:        ulid.Make().String(),
		CreatedAt: now,
	}
	if existing, err := s.repo.GetProfile(ctx); err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	profile.Username = strings.TrimSpace(input.Username)
	profile.Role = strings.TrimSpace(input.Role)
	profile.JoinDate = strings.TrimSpace(input.JoinDate)
	profile.Bio = strings.TrimSpace(input.Bio)
	profile.UpdatedAt = now

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteProfile(ctx); err != nil {
			// Stale cache expires on its own TTL; log and continue.
			s.logger.Warn("profile cache invalidation failed", "error", err)
		}
	}

	s.metrics.IncProfileUpdated()

	return profile, nil
}

// writeBack stores a database read in the cache (best effort).
func (s *ProfileService) writeBack(ctx context.Context, profile *model.ProfileSnapshot) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetProfile(ctx, profile, s.cacheTTL); err != nil {
		s.logger.Warn("profile cache write failed", "error", err)
	}
}

// validateProfileInput checks field presence and length limits.
func validateProfileInput(input UpdateProfileInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(input.Role) == "" {
		return ErrEmptyRole
	}
	if strings.TrimSpace(input.JoinDate) == "" {
		return ErrEmptyJoinDate
	}

	if len(input.Username) > maxFieldLength ||
		len(input.Role) > maxFieldLength ||
		len(input.JoinDate) > maxFieldLength {
		return ErrFieldTooLong
	}
	if len(input.Bio) > maxBioLength {
		return ErrFieldTooLong
	}

	return nil
}
