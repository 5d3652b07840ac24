// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// Default snapshot field values, served whenever no stored profile is
// reachable. A fresh deployment returns exactly these.
const (
	DefaultUsername = "John Doe"
	DefaultRole     = "Administrator"
	DefaultJoinDate = "January 1, 2020"
	DefaultBio      = "Passionate Drupal developer."
)

// ProfileSnapshot is the stored display profile.
// JoinDate is a pre-formatted display string, not a structured date.
type ProfileSnapshot struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	JoinDate  string    `json:"join_date"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultProfileSnapshot returns the built-in snapshot.
func DefaultProfileSnapshot() *ProfileSnapshot {
	return &ProfileSnapshot{
		Username: DefaultUsername,
		Role:     DefaultRole,
		JoinDate: DefaultJoinDate,
		Bio:      DefaultBio,
	}
}

// ProfilePayload is the user_profile payload handed to the rendering layer.
// Field names are a fixed contract; renderers bind them unchanged.
type ProfilePayload struct {
	Username string `json:"username"`
	UserRole string `json:"user_role"`
	JoinDate string `json:"join_date"`
	Bio      string `json:"bio"`
}

// ToPayload converts the snapshot to its rendering payload.
func (p *ProfileSnapshot) ToPayload() ProfilePayload {
	return ProfilePayload{
		Username: p.Username,
		UserRole: p.Role,
		JoinDate: p.JoinDate,
		Bio:      p.Bio,
	}
}

// WelcomePayload is the welcome_message payload handed to the rendering layer.
type WelcomePayload struct {
	Greeting string `json:"greeting"`
}

// CachedProfile represents profile data stored in Redis cache.
// Uses string types for Redis hash compatibility.
type CachedProfile struct {
	ID        string `redis:"id"`
	Username  string `redis:"username"`
	Role      string `redis:"role"`
	JoinDate  string `redis:"join_date"`
	Bio       string `redis:"bio"`
	UpdatedAt string `redis:"updated_at"` // Unix timestamp or empty
}

// ToProfile converts CachedProfile to the domain snapshot.
func (c *CachedProfile) ToProfile() *ProfileSnapshot {
	p := &ProfileSnapshot{
		ID:       c.ID,
		Username: c.Username,
		Role:     c.Role,
		JoinDate: c.JoinDate,
		Bio:      c.Bio,
	}

	if c.UpdatedAt != "" {
		if ts, err := strconv.ParseInt(c.UpdatedAt, 10, 64); err == nil {
			p.UpdatedAt = time.Unix(ts, 0)
		}
	}

	return p
}

// ToCachedProfile converts the domain snapshot to its cache form.
func (p *ProfileSnapshot) ToCachedProfile() *CachedProfile {
	cached := &CachedProfile{
		ID:       p.ID,
		Username: p.Username,
		Role:     p.Role,
		JoinDate: p.JoinDate,
		Bio:      p.Bio,
	}

	if !p.UpdatedAt.IsZero() {
		cached.UpdatedAt = strconv.FormatInt(p.UpdatedAt.Unix(), 10)
	}

	return cached
}
