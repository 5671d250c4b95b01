package cache

import (
	"context"

	"trainingcentre/internal/domain"
)

// SessionStore is the persistence boundary for a session's user record.
// One slot per session, written and deleted wholesale. Load returns
// (nil, nil) when the slot is missing or its payload does not parse:
// a broken slot is treated as "no session" rather than an error.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*domain.User, error)
	Save(ctx context.Context, sessionID string, user *domain.User) error
	Delete(ctx context.Context, sessionID string) error
}
