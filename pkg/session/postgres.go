package session

import (
	"database/sql"
	"fmt"
	"time"
)

// PostgresStore keeps sessions in Postgres, for deployments that already run
// a database but no Redis.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema() error {
	const q = `
CREATE TABLE IF NOT EXISTS dashboard_sessions (
	id TEXT PRIMARY KEY,
	token TEXT NOT NULL,
	role TEXT NOT NULL,
	email TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
)`
	if _, err := s.db.Exec(q); err != nil {
		return fmt.Errorf("ensure dashboard_sessions schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(id string) (Session, error) {
	const q = `
SELECT id, token, role, email, created_at, expires_at
FROM dashboard_sessions WHERE id = $1`

	var sess Session
	err := s.db.QueryRow(q, id).Scan(&sess.ID, &sess.Token, &sess.Role, &sess.Email, &sess.CreatedAt, &sess.ExpiresAt)
	if err == sql.ErrNoRows {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("query session: %w", err)
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.Delete(id)
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *PostgresStore) Put(sess Session) error {
	const q = `
INSERT INTO dashboard_sessions (id, token, role, email, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	token = EXCLUDED.token,
	role = EXCLUDED.role,
	email = EXCLUDED.email,
	expires_at = EXCLUDED.expires_at`

	if _, err := s.db.Exec(q, sess.ID, sess.Token, sess.Role, sess.Email, sess.CreatedAt, sess.ExpiresAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM dashboard_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
