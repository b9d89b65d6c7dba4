// Package session holds the authenticated user's token, display name and role
// in short-lived storage. The session is created by login, destroyed by
// logout, and injected explicitly into every workflow that needs it; no other
// component may write it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dawar-shafaque/restaurant-application/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionPrefix = "session:"

// ErrNotFound is returned when no session exists for the given ID, either
// because it expired or because the user logged out.
var ErrNotFound = errors.New("session not found")

// Session is the complete client-side authentication state: three fields,
// nothing else. Authenticated is equivalent to Token being present.
type Session struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// IsAuthenticated reports whether the session carries a token.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Manager stores sessions in Redis with a TTL, keyed by opaque UUIDs.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

// Create stores a fresh session and returns its ID.
func (m *Manager) Create(ctx context.Context, s Session) (string, error) {
	id := uuid.NewString()
	if err := m.put(ctx, id, s); err != nil {
		return "", err
	}
	return id, nil
}

// Get retrieves the session for the given ID.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	data, err := m.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// Update rewrites an existing session in place, refreshing its TTL. Used by
// the profile workflow when the display name changes.
func (m *Manager) Update(ctx context.Context, id string, s Session) error {
	return m.put(ctx, id, s)
}

// Delete removes the session; all three fields are gone atomically.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.client.Del(ctx, sessionPrefix+id).Err()
}

func (m *Manager) put(ctx context.Context, id string, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := m.client.Set(ctx, sessionPrefix+id, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
