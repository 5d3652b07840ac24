// Package registry maps payload keys to provider functions.
// Providers are registered explicitly at startup; there is no discovery
// mechanism. The dashboard endpoint renders every registered payload.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Well-known payload keys.
const (
	KeyWelcomeMessage = "welcome_message"
	KeyUserProfile    = "user_profile"
)

var (
	// ErrDuplicateKey indicates a provider is already registered for the key.
	ErrDuplicateKey = errors.New("payload key already registered")
	// ErrUnknownKey indicates no provider is registered for the key.
	ErrUnknownKey = errors.New("unknown payload key")
)

// Provider produces a payload for the rendering layer.
type Provider func(ctx context.Context) (any, error)

// Registry holds payload providers keyed by payload name.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider under the given key.
// Returns ErrDuplicateKey if the key is taken.
func (r *Registry) Register(key string, provider Provider) error {
	if key == "" {
		return errors.New("payload key must not be empty")
	}
	if provider == nil {
		return errors.New("provider must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	r.providers[key] = provider
	return nil
}

// Get returns the provider for a key.
func (r *Registry) Get(key string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return provider, nil
}

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.providers))
	for key := range r.providers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Render invokes every registered provider and returns the payloads keyed
// by payload name. Providers are invoked in sorted key order; the first
// provider error aborts the render.
func (r *Registry) Render(ctx context.Context) (map[string]any, error) {
	keys := r.Keys()

	payloads := make(map[string]any, len(keys))
	for _, key := range keys {
		provider, err := r.Get(key)
		if err != nil {
			return nil, err
		}

		payload, err := provider(ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", key, err)
		}
		payloads[key] = payload
	}

	return payloads, nil
}
