package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStrategy(t *testing.T) (*Strategy, *repository.Store) {
	t.Helper()

	store, err := repository.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &Strategy{users: store, log: zap.NewNop()}, store
}

func signUpTestUser(t *testing.T, store *repository.Store, username, password string) *model.User {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	u := model.NewUser(username, "Test User", hash, model.GenderFemale)
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

func Test_authenticate(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s, store := newTestStrategy(t)
	ctx := context.Background()

	created := signUpTestUser(t, store, "alice", "secret123")

	user, err := s.Authenticate(ctx, "alice", "secret123")
	require.NoError(err)
	assert.Equal(created.ID, user.ID)

	_, err = s.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(err, ErrInvalidCredentials)

	_, err2 := s.Authenticate(ctx, "nobody", "secret123")
	assert.ErrorIs(err2, ErrInvalidCredentials)

	// unknown user and bad password must be indistinguishable
	assert.Equal(err.Error(), err2.Error())
}

func Test_serializeRoundTrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s, store := newTestStrategy(t)
	ctx := context.Background()

	created := signUpTestUser(t, store, "bob", "hunter22")

	id := s.SerializeUser(created)
	assert.Equal(created.ID, id)

	user, err := s.DeserializeUser(ctx, id)
	require.NoError(err)
	assert.Equal("bob", user.Username)

	_, err = s.DeserializeUser(ctx, "deleted-user-id")
	assert.ErrorIs(err, ErrSessionUserNotFound)
}

func Test_hashPassword(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	h1, err := HashPassword("secret123")
	require.NoError(err)
	h2, err := HashPassword("secret123")
	require.NoError(err)

	assert.NotEqual("secret123", h1)
	assert.NotEqual(h1, h2, "bcrypt salts every hash")
}
