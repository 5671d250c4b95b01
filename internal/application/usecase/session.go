package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"trainingcentre/internal/domain"
	"trainingcentre/internal/infrastructure/cache"
	"trainingcentre/internal/infrastructure/security"
)

// SessionUseCase owns the session lifecycle: start on register/login,
// replace on every user mutation, end on logout. The user record lives
// only in the session slot.
//
// Authentication here is simulated: any email/password pair is accepted
// and the password is neither stored nor checked. Not a production auth
// scheme.
type SessionUseCase struct {
	store  cache.SessionStore
	tokens *security.TokenManager
}

func NewSessionUseCase(store cache.SessionStore, tokens *security.TokenManager) *SessionUseCase {
	return &SessionUseCase{store: store, tokens: tokens}
}

// Register fabricates a fresh user and starts a session for it.
func (uc *SessionUseCase) Register(ctx context.Context, name, email string) (string, *domain.User, error) {
	user := &domain.User{
		Name:            name,
		Email:           email,
		Progress:        0,
		EnrolledCourses: []string{},
	}
	token, err := uc.Start(ctx, user)
	return token, user, err
}

// Login fabricates a user from the email (name = local part) and starts a
// session. Mirrors Register except for the seeded progress.
func (uc *SessionUseCase) Login(ctx context.Context, email string) (string, *domain.User, error) {
	user := &domain.User{
		Name:            strings.SplitN(email, "@", 2)[0],
		Email:           email,
		Progress:        10,
		EnrolledCourses: []string{},
	}
	token, err := uc.Start(ctx, user)
	return token, user, err
}

// Start issues a new session id, saves the slot and signs the token.
func (uc *SessionUseCase) Start(ctx context.Context, user *domain.User) (string, error) {
	sessionID := uuid.New().String()
	if err := uc.store.Save(ctx, sessionID, user); err != nil {
		return "", err
	}
	return uc.tokens.Generate(sessionID)
}

// Current loads the slot. (nil, nil) means no session.
func (uc *SessionUseCase) Current(ctx context.Context, sessionID string) (*domain.User, error) {
	return uc.store.Load(ctx, sessionID)
}

// Replace overwrites the slot wholesale. The only write path for
// mutations: callers read, modify a copy, then replace.
func (uc *SessionUseCase) Replace(ctx context.Context, sessionID string, user *domain.User) error {
	return uc.store.Save(ctx, sessionID, user)
}

// End removes the slot. The token stays valid until expiry but points at
// nothing.
func (uc *SessionUseCase) End(ctx context.Context, sessionID string) error {
	return uc.store.Delete(ctx, sessionID)
}
