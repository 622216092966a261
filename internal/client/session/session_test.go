package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/common"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStore_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	user := &models.User{ID: "u1", Nickname: "dali", Level: "5.11a"}
	require.NoError(t, s.SetCredentials(ctx, "opaque-token", user))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token, "opaque tokens are returned as-is")

	got, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestStore_EmptyBeforeLogin(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	_, err = s.User(ctx)
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestStore_Clear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCredentials(ctx, "tok", &models.User{ID: "u1"}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clearing an empty session is a no-op")

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestStore_ExpiredJWTNotReturned(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	expired := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, s.SetCredentials(ctx, expired, &models.User{ID: "u1"}))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token, "expired JWT must not be attached to requests")
}

func TestStore_ValidJWTReturned(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	valid := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, s.SetCredentials(ctx, valid, &models.User{ID: "u1"}))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, valid, token)
}

func TestStore_SetCredentialsOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCredentials(ctx, "first", &models.User{ID: "u1", Nickname: "a"}))
	require.NoError(t, s.SetCredentials(ctx, "second", &models.User{ID: "u2", Nickname: "b"}))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)
}
