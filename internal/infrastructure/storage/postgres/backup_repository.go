package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/backup"
)

// BackupRepository хранит снапшоты в таблице user_backups, одна строка
// на пользователя. Данные и статистика лежат в JSONB.
type BackupRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewBackupRepository(db *Storage, log *slog.Logger) *BackupRepository {
	return &BackupRepository{
		db:  db,
		log: log,
	}
}

func (r *BackupRepository) GetByUser(ctx context.Context, userID int) (*backup.Snapshot, error) {
	var (
		snap      backup.Snapshot
		dataJSON  []byte
		statsJSON []byte
	)
	err := r.db.Pool().QueryRow(ctx,
		`SELECT user_id, backup_id, data, version, last_backup_time, data_size,
			stats, created_at, updated_at
		FROM user_backups WHERE user_id = $1`, userID).
		Scan(&snap.UserID, &snap.BackupID, &dataJSON, &snap.Version,
			&snap.LastBackupTime, &snap.DataSize, &statsJSON,
			&snap.CreatedAt, &snap.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, backup.ErrNoBackup
	}
	if err != nil {
		return nil, fmt.Errorf("get backup: %w", err)
	}

	if err := json.Unmarshal(dataJSON, &snap.Data); err != nil {
		return nil, fmt.Errorf("decode backup data: %w", err)
	}
	if err := json.Unmarshal(statsJSON, &snap.Stats); err != nil {
		return nil, fmt.Errorf("decode backup stats: %w", err)
	}
	return &snap, nil
}

func (r *BackupRepository) Upsert(ctx context.Context, snap *backup.Snapshot) (*backup.Snapshot, error) {
	dataJSON, err := json.Marshal(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("encode backup data: %w", err)
	}
	statsJSON, err := json.Marshal(snap.Stats)
	if err != nil {
		return nil, fmt.Errorf("encode backup stats: %w", err)
	}

	err = r.db.Pool().QueryRow(ctx,
		`INSERT INTO user_backups
			(user_id, backup_id, data, version, last_backup_time, data_size, stats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			backup_id = EXCLUDED.backup_id,
			data = EXCLUDED.data,
			version = EXCLUDED.version,
			last_backup_time = EXCLUDED.last_backup_time,
			data_size = EXCLUDED.data_size,
			stats = EXCLUDED.stats,
			updated_at = NOW()
		RETURNING created_at, updated_at`,
		snap.UserID, snap.BackupID, dataJSON, snap.Version,
		snap.LastBackupTime, snap.DataSize, statsJSON).
		Scan(&snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert backup: %w", err)
	}
	return snap, nil
}

func (r *BackupRepository) DeleteByUser(ctx context.Context, userID int) (bool, error) {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM user_backups WHERE user_id = $1`, userID)
	if err != nil {
		return false, fmt.Errorf("delete backup: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BackupRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM user_backups WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old backups: %w", err)
	}
	return tag.RowsAffected(), nil
}
