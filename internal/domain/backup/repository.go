package backup

import (
	"context"
	"time"
)

// Repository — хранилище снапшотов, одна запись на пользователя.
type Repository interface {
	// GetByUser возвращает снапшот пользователя или ErrNoBackup.
	GetByUser(ctx context.Context, userID int) (*Snapshot, error)

	// Upsert атомарно создаёт или целиком заменяет снапшот пользователя.
	// Производные поля (DataSize, Stats, UpdatedAt) должны быть уже
	// пересчитаны вызывающей стороной через Snapshot.Refresh.
	Upsert(ctx context.Context, snap *Snapshot) (*Snapshot, error)

	// DeleteByUser удаляет снапшот; false — записи не было.
	DeleteByUser(ctx context.Context, userID int) (bool, error)

	// DeleteOlderThan удаляет снапшоты, не обновлявшиеся дольше cutoff.
	// Административная операция для политики хранения.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
