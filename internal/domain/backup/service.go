package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Servicer — интерфейс сервиса резервного копирования и синхронизации.
type Servicer interface {
	// Backup целиком заменяет облачный снапшот пользователя.
	Backup(ctx context.Context, userID int, data BoxData, version string, timestamp time.Time) (*BackupResult, error)

	// Restore возвращает сохранённый снапшот. ErrNoBackup, если копии нет.
	Restore(ctx context.Context, userID int) (*RestoreResult, error)

	// SmartSync сливает локальные данные клиента с облачным снапшотом и
	// сохраняет результат как новый снапшот.
	SmartSync(ctx context.Context, userID int, localData BoxData, lastSyncTime *time.Time, opts MergeOptions) (*SyncResult, error)

	// SelectiveSync заменяет только перечисленные боксы, остальные не трогает.
	SelectiveSync(ctx context.Context, userID int, data BoxData, boxNames []string) error

	// Status возвращает метаданные без изменения состояния. Отсутствие копии
	// не является ошибкой.
	Status(ctx context.Context, userID int) (*StatusResult, error)

	// Delete удаляет облачную копию. Идемпотентна.
	Delete(ctx context.Context, userID int) error

	// Purge удаляет снапшоты старше ageDays дней. Для внешнего планировщика.
	Purge(ctx context.Context, ageDays int) (int64, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "backup_service")),
		now:  time.Now,
	}
}

func (s *Service) Backup(ctx context.Context, userID int, data BoxData, version string, timestamp time.Time) (*BackupResult, error) {
	now := s.now()
	if timestamp.IsZero() {
		timestamp = now
	}

	snap := &Snapshot{
		UserID:         userID,
		BackupID:       uuid.NewString(),
		Data:           data,
		Version:        version,
		LastBackupTime: timestamp,
	}
	snap.Refresh(now)

	stored, err := s.repo.Upsert(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("upsert snapshot: %w", err)
	}

	s.log.Info("backup completed",
		slog.Int("user_id", userID),
		slog.Int("boxes", stored.Stats.TotalBoxes),
		slog.Int("items", stored.Stats.TotalItems),
		slog.String("size", stored.FormattedSize()),
	)

	return &BackupResult{
		Stats:          stored.Stats,
		BackupID:       stored.BackupID,
		LastBackupTime: stored.LastBackupTime,
	}, nil
}

func (s *Service) Restore(ctx context.Context, userID int) (*RestoreResult, error) {
	snap, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoBackup) {
			return nil, ErrNoBackup
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return &RestoreResult{
		Data:           snap.Data,
		Stats:          snap.Stats,
		LastBackupTime: snap.LastBackupTime,
		Version:        snap.Version,
	}, nil
}

// SmartSync читает облачный снапшот (пустой, если копии нет), сливает его с
// локальными данными и сохраняет результат. lastSyncTime принимается для
// совместимости с клиентами, но в сверке по элементам не участвует:
// разрешение конфликтов определяется только opts.PreferCloud.
func (s *Service) SmartSync(ctx context.Context, userID int, localData BoxData, lastSyncTime *time.Time, opts MergeOptions) (*SyncResult, error) {
	cloud := BoxData{}
	version := ""
	backupID := uuid.NewString()

	snap, err := s.repo.GetByUser(ctx, userID)
	switch {
	case err == nil:
		cloud = snap.Data
		version = snap.Version
		backupID = snap.BackupID
	case errors.Is(err, ErrNoBackup):
		// первый sync — облачная сторона пустая
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	merged, conflicts := Merge(localData, cloud, opts)
	if len(conflicts) > 0 {
		s.log.Warn("smart sync resolved conflicting keys",
			slog.Int("user_id", userID),
			slog.Int("conflicts", len(conflicts)),
			slog.Bool("prefer_cloud", opts.PreferCloud),
		)
	}

	now := s.now()
	next := &Snapshot{
		UserID:         userID,
		BackupID:       backupID,
		Data:           merged,
		Version:        version,
		LastBackupTime: now,
	}
	next.Refresh(now)

	stored, err := s.repo.Upsert(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("upsert merged snapshot: %w", err)
	}

	s.log.Info("smart sync completed",
		slog.Int("user_id", userID),
		slog.Int("boxes", stored.Stats.TotalBoxes),
	)

	return &SyncResult{
		MergedData: stored.Data,
		Stats:      stored.Stats,
		Conflicts:  conflicts,
	}, nil
}

// SelectiveSync загружает (или создаёт) снапшот и перезаписывает в нём только
// боксы из boxNames, для которых клиент прислал данные. Имена без данных
// пропускаются, неназванные боксы остаются байт-в-байт прежними.
func (s *Service) SelectiveSync(ctx context.Context, userID int, data BoxData, boxNames []string) error {
	if len(boxNames) == 0 {
		return ErrNoBoxNames
	}

	now := s.now()
	snap, err := s.repo.GetByUser(ctx, userID)
	switch {
	case errors.Is(err, ErrNoBackup):
		snap = &Snapshot{
			UserID:   userID,
			BackupID: uuid.NewString(),
			Data:     BoxData{},
		}
	case err != nil:
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Data == nil {
		snap.Data = BoxData{}
	}

	for _, boxName := range boxNames {
		if box, ok := data[boxName]; ok {
			snap.Data[boxName] = box
		}
	}

	snap.LastBackupTime = now
	snap.Refresh(now)

	if _, err := s.repo.Upsert(ctx, snap); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}

	s.log.Info("selective sync completed",
		slog.Int("user_id", userID),
		slog.Int("boxes_requested", len(boxNames)),
	)
	return nil
}

func (s *Service) Status(ctx context.Context, userID int) (*StatusResult, error) {
	snap, err := s.repo.GetByUser(ctx, userID)
	if errors.Is(err, ErrNoBackup) {
		return &StatusResult{HasBackup: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	t := snap.LastBackupTime
	stats := snap.Stats
	return &StatusResult{
		HasBackup:      true,
		LastBackupTime: &t,
		Version:        snap.Version,
		Stats:          &stats,
	}, nil
}

func (s *Service) Delete(ctx context.Context, userID int) error {
	deleted, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if !deleted {
		s.log.Debug("delete requested for missing backup", slog.Int("user_id", userID))
	}
	return nil
}

func (s *Service) Purge(ctx context.Context, ageDays int) (int64, error) {
	if ageDays <= 0 {
		return 0, fmt.Errorf("age days must be positive, got %d", ageDays)
	}

	cutoff := s.now().AddDate(0, 0, -ageDays)
	count, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge snapshots: %w", err)
	}

	if count > 0 {
		s.log.Info("purged stale backups",
			slog.Int64("count", count),
			slog.Int("age_days", ageDays),
		)
	}
	return count, nil
}

func formatBytes(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	}
}
