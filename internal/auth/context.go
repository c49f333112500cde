package auth

import (
	"context"
	"errors"

	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/model"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Context exposes the session operations resolvers are allowed to perform.
// Per-request identity lives in the request's context.Context; this type
// itself holds no mutable state.
type Context struct {
	sessions *middleware.SessionManager
	strategy *Strategy
	log      *zap.Logger
}

type ContextParams struct {
	fx.In

	Sessions *middleware.SessionManager
	Strategy *Strategy
	Log      *zap.Logger
}

func NewContext(p ContextParams) *Context {
	return &Context{
		sessions: p.Sessions,
		strategy: p.Strategy,
		log:      p.Log,
	}
}

// GetUser returns the user bound to the current session, or nil when the
// request is anonymous. A session pointing at a deleted user is treated as
// anonymous, not as an error.
func (c *Context) GetUser(ctx context.Context) (*model.User, error) {
	id := c.sessions.UserID(ctx)
	if id == "" {
		return nil, nil
	}

	user, err := c.strategy.DeserializeUser(ctx, id)
	if errors.Is(err, ErrSessionUserNotFound) {
		c.log.Warn("session references missing user", zap.String("user_id", id))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials without touching the session.
func (c *Context) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	return c.strategy.Authenticate(ctx, username, password)
}

// Login binds the session to the user. Calling it again for the same user
// renews the token and refreshes the expiry.
func (c *Context) Login(ctx context.Context, user *model.User) error {
	return c.sessions.PutUserID(ctx, c.strategy.SerializeUser(user))
}

// Logout unbinds the identity, destroys the session record and has the
// middleware clear the client cookie on save.
func (c *Context) Logout(ctx context.Context) error {
	return c.sessions.Destroy(ctx)
}

type contextKey struct{}

// With attaches the auth context to a request context.
func With(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// For retrieves the auth context attached by With, or nil.
func For(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}
