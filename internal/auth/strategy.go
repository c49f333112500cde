package auth

import (
	"context"
	"errors"

	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionUserNotFound means a session references a user id that no
	// longer resolves. Callers treat the session as anonymous.
	ErrSessionUserNotFound = errors.New("session user not found")
)

const hashCost = 10

// Strategy verifies username/password credentials against the user store
// and converts users to and from their session representation.
type Strategy struct {
	users repository.Users
	log   *zap.Logger
}

type StrategyParams struct {
	fx.In

	Users repository.Users
	Log   *zap.Logger
}

func NewStrategy(p StrategyParams) *Strategy {
	return &Strategy{
		users: p.Users,
		log:   p.Log,
	}
}

func (s *Strategy) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		s.log.Debug("password mismatch", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// SerializeUser reduces a user to the identifier stored in the session.
func (s *Strategy) SerializeUser(user *model.User) string {
	return user.ID
}

// DeserializeUser resolves a serialized identifier back to a full user.
func (s *Strategy) DeserializeUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.UserByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionUserNotFound
	}
	return user, err
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
