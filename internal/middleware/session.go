package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

const (
	userIDKey       = "userID"
	cookieName      = "spendwise_session"
	sessionLifetime = 7 * 24 * time.Hour
)

// SessionManager wraps scs with the cookie policy for this service:
// HTTP-only, 7-day lifetime, session records kept server-side.
type SessionManager struct {
	impl *scs.SessionManager
}

func NewSessionManager(store scs.Store) (*SessionManager, error) {
	impl := scs.New()
	impl.Store = store
	impl.Lifetime = sessionLifetime
	impl.Cookie.Name = cookieName
	impl.Cookie.HttpOnly = true
	impl.Cookie.SameSite = http.SameSiteLaxMode

	return &SessionManager{impl: impl}, nil
}

func (s *SessionManager) Wrap(next http.Handler) http.Handler {
	return s.impl.LoadAndSave(next)
}

// UserID returns the authenticated user id bound to the current session,
// or "" when the session is anonymous.
func (s *SessionManager) UserID(ctx context.Context) string {
	return s.impl.GetString(ctx, userIDKey)
}

// PutUserID binds a user id to the current session. The session token is
// renewed first so a pre-login token can never carry an identity.
func (s *SessionManager) PutUserID(ctx context.Context, id string) error {
	if err := s.impl.RenewToken(ctx); err != nil {
		return err
	}
	s.impl.Put(ctx, userIDKey, id)
	return nil
}

// Destroy removes the session record from the store and instructs the
// client to drop its cookie on save.
func (s *SessionManager) Destroy(ctx context.Context) error {
	return s.impl.Destroy(ctx)
}

// Token returns the current session token, or "" before first save.
func (s *SessionManager) Token(ctx context.Context) string {
	return s.impl.Token(ctx)
}
