package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/user"
)

const userColumns = `id, email, phone_number, name, profile_picture, password_hash,
	auth_type, google_id, role, subscription_type, trial_started_at, trial_ends_at,
	has_active_premium, premium_expires_at, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, phone_number, name, profile_picture, password_hash,
			auth_type, google_id, role, subscription_type, trial_started_at, trial_ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		u.Email, u.PhoneNumber, u.Name, u.ProfilePicture, u.PasswordHash,
		u.AuthType, u.GoogleID, u.Role, u.SubscriptionType, u.TrialStartedAt, u.TrialEndsAt).
		Scan(&id)
	return id, err
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByContact(ctx context.Context, email, phone string) (*user.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND phone_number = $2)`,
		email, phone)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int, name, email, profilePicture string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, profile_picture = $3, updated_at = NOW()
		WHERE id = $4`,
		name, email, profilePicture, id)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	return err
}

func (r *UserRepository) UpdateSubscription(ctx context.Context, id int, tier string, hasPremium bool, expiresAt *time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET subscription_type = $1, has_active_premium = $2,
			premium_expires_at = $3, updated_at = NOW()
		WHERE id = $4`,
		tier, hasPremium, expiresAt, id)
	return err
}

// Delete удаляет пользователя; настройки, сервисы, бэкап и сессии
// каскадно удаляются внешними ключами схемы.
func (r *UserRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PhoneNumber, &u.Name, &u.ProfilePicture, &u.PasswordHash,
		&u.AuthType, &u.GoogleID, &u.Role, &u.SubscriptionType, &u.TrialStartedAt,
		&u.TrialEndsAt, &u.HasActivePremium, &u.PremiumExpiresAt, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
