package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/settings"
)

// SettingsRepository хранит документ настроек: скалярные поля в колонках,
// вложенные блоки в JSONB.
type SettingsRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSettingsRepository(db *Storage, log *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:  db,
		log: log,
	}
}

func (r *SettingsRepository) FindByUser(ctx context.Context, userID int) (*settings.Settings, error) {
	var (
		s                 settings.Settings
		notificationsJSON []byte
		financialJSON     []byte
		backupJSON        []byte
	)
	err := r.db.Pool().QueryRow(ctx,
		`SELECT user_id, language, currency, theme, date_format,
			notifications, financial, backup, created_at, updated_at
		FROM user_settings WHERE user_id = $1`, userID).
		Scan(&s.UserID, &s.Language, &s.Currency, &s.Theme, &s.DateFormat,
			&notificationsJSON, &financialJSON, &backupJSON,
			&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find settings: %w", err)
	}

	if err := json.Unmarshal(notificationsJSON, &s.Notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	if err := json.Unmarshal(financialJSON, &s.Financial); err != nil {
		return nil, fmt.Errorf("decode financial settings: %w", err)
	}
	if err := json.Unmarshal(backupJSON, &s.Backup); err != nil {
		return nil, fmt.Errorf("decode backup settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	notificationsJSON, err := json.Marshal(s.Notifications)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	financialJSON, err := json.Marshal(s.Financial)
	if err != nil {
		return fmt.Errorf("encode financial settings: %w", err)
	}
	backupJSON, err := json.Marshal(s.Backup)
	if err != nil {
		return fmt.Errorf("encode backup settings: %w", err)
	}

	err = r.db.Pool().QueryRow(ctx,
		`INSERT INTO user_settings
			(user_id, language, currency, theme, date_format,
			 notifications, financial, backup)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			currency = EXCLUDED.currency,
			theme = EXCLUDED.theme,
			date_format = EXCLUDED.date_format,
			notifications = EXCLUDED.notifications,
			financial = EXCLUDED.financial,
			backup = EXCLUDED.backup,
			updated_at = NOW()
		RETURNING created_at, updated_at`,
		s.UserID, s.Language, s.Currency, s.Theme, s.DateFormat,
		notificationsJSON, financialJSON, backupJSON).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) DeleteByUser(ctx context.Context, userID int) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM user_settings WHERE user_id = $1`, userID)
	return err
}
