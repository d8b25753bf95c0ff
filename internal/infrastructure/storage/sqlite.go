// Package storage persists play sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Session is one saved play session: where the player was when the
// playing screen was left.
type Session struct {
	ID      uuid.UUID
	PlayerX int
	PlayerY int
	SavedAt time.Time
}

// NewSession creates a session with a fresh random ID.
func NewSession(x, y int) Session {
	return Session{
		ID:      uuid.New(),
		PlayerX: x,
		PlayerY: y,
		SavedAt: time.Now().UTC(),
	}
}

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player_x INTEGER NOT NULL,
			player_y INTEGER NOT NULL,
			saved_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_saved_at ON sessions(saved_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveSession inserts a session row.
func (s *Store) SaveSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, player_x, player_y, saved_at) VALUES (?, ?, ?, ?)",
		sess.ID.String(), sess.PlayerX, sess.PlayerY, sess.SavedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// LatestSession returns the most recently saved session. The boolean is
// false when nothing has been saved yet.
func (s *Store) LatestSession(ctx context.Context) (Session, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, player_x, player_y, saved_at FROM sessions ORDER BY saved_at DESC LIMIT 1",
	)

	var (
		id      string
		sess    Session
		savedAt int64
	)
	if err := row.Scan(&id, &sess.PlayerX, &sess.PlayerY, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("storage: cannot query session: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Session{}, false, fmt.Errorf("storage: corrupt session id %q: %w", id, err)
	}
	sess.ID = parsed
	sess.SavedAt = time.Unix(0, savedAt).UTC()
	return sess, true, nil
}

// Count returns the number of stored sessions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
