package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/welcomeboard/welcomeboard/internal/model"
)

// Common errors for profile repository operations.
var (
	// ErrProfileNotFound indicates no profile row has been stored yet.
	ErrProfileNotFound = errors.New("profile not found")
)

// GetProfile retrieves the current profile snapshot.
// The profiles table holds at most one current row; callers fall back to the
// built-in default when ErrProfileNotFound is returned.
func (r *Repository) GetProfile(ctx context.Context) (*model.ProfileSnapshot, error) {
	query := `
		SELECT id, username, role, join_date, bio, created_at, updated_at
		FROM profiles
		ORDER BY updated_at DESC
		LIMIT 1
	`

	profile := &model.ProfileSnapshot{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&profile.ID,
		&profile.Username,
		&profile.Role,
		&profile.JoinDate,
		&profile.Bio,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// UpsertProfile inserts or replaces the current profile snapshot.
func (r *Repository) UpsertProfile(ctx context.Context, profile *model.ProfileSnapshot) error {
	query := `
		INSERT INTO profiles (id, username, role, join_date, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			role = EXCLUDED.role,
			join_date = EXCLUDED.join_date,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Username,
		profile.Role,
		profile.JoinDate,
		profile.Bio,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
