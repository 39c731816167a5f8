package postgres

import (
	"context"
	"time"

	"golang.org/x/exp/slog"
)

type SessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log,
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO sessions (user_id, token_hash, expires_at)
         VALUES ($1, decode($2, 'hex'), $3)`,
		userID, tokenHash, expiresAt)
	return err
}

func (r *SessionRepository) IsActive(ctx context.Context, tokenHash string) (bool, error) {
	var active bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM sessions
			WHERE token_hash = decode($1, 'hex') AND expires_at > NOW()
		)`, tokenHash).Scan(&active)
	if err != nil {
		return false, err
	}
	return active, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM sessions WHERE token_hash = decode($1, 'hex')`, tokenHash)
	return err
}

func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID int) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
