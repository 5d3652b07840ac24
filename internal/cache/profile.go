package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/welcomeboard/welcomeboard/internal/model"
)

// Cache key and TTL for the current profile snapshot.
const (
	profileKey = "profile:current"

	// DefaultProfileTTL is used when no TTL is configured.
	DefaultProfileTTL = 5 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetProfile retrieves the cached profile snapshot.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetProfile(ctx context.Context) (*model.ProfileSnapshot, error) {
	result, err := c.client.HGetAll(ctx, profileKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrCacheMiss
	}

	cached := &model.CachedProfile{
		ID:        result["id"],
		Username:  result["username"],
		Role:      result["role"],
		JoinDate:  result["join_date"],
		Bio:       result["bio"],
		UpdatedAt: result["updated_at"],
	}

	return cached.ToProfile(), nil
}

// SetProfile stores the profile snapshot in cache with the given TTL.
func (c *Cache) SetProfile(ctx context.Context, profile *model.ProfileSnapshot, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}

	cached := profile.ToCachedProfile()

	fields := map[string]any{
		"id":        cached.ID,
		"username":  cached.Username,
		"role":      cached.Role,
		"join_date": cached.JoinDate,
		"bio":       cached.Bio,
	}
	if cached.UpdatedAt != "" {
		fields["updated_at"] = cached.UpdatedAt
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, profileKey, fields)
	pipe.Expire(ctx, profileKey, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}

	return nil
}

// DeleteProfile removes the cached profile snapshot.
// Called after admin updates so the next read goes to the database.
func (c *Cache) DeleteProfile(ctx context.Context) error {
	if err := c.client.Del(ctx, profileKey).Err(); err != nil {
		return fmt.Errorf("failed to delete profile from cache: %w", err)
	}
	return nil
}
