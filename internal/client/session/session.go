// Package session persists the client's authentication state: the access
// token and the logged-in user record, kept under fixed keys in a small
// sqlite key/value table. It is the browser-localStorage analog for the
// CLI client and is cleared on logout or on any 401 from the API.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/session/migrations"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/common"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/dbx"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Fixed storage keys, mirroring the web client's localStorage keys.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the sqlite-backed session store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate session db: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetCredentials stores the token and user in a single transaction.
func (s *Store) SetCredentials(ctx context.Context, token string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, data)
	})
}

// Token returns the persisted access token, or "" when no session exists
// or the token has visibly expired (per its unverified JWT exp claim).
// Opaque non-JWT tokens are returned as-is.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := get(ctx, s.db, keyToken)
	if err != nil {
		return "", err
	}
	token := string(value)
	if token == "" || tokenExpired(token) {
		return "", nil
	}
	return token, nil
}

// User returns the persisted user record, or common.ErrNoSession when
// nobody is logged in.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	value, err := get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, common.ErrNoSession
	}
	var u models.User
	if err := json.Unmarshal(value, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &u, nil
}

// Clear wipes the persisted session. Safe to call when nothing is stored.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim lies in the
// past. The claim is read without signature verification: the client has no
// key material and only wants to avoid sending a token the server will
// reject anyway. Tokens that do not parse as JWTs are treated as valid.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
