package session

import (
	"context"
	"time"
)

// Repository хранит хэши выданных токенов для возможности явного отзыва
// (logout, удаление аккаунта).
type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	// IsActive сообщает, выдан ли токен и не отозван ли он.
	IsActive(ctx context.Context, tokenHash string) (bool, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID int) error
	// DeleteExpired убирает протухшие записи; вызывается планировщиком.
	DeleteExpired(ctx context.Context) (int64, error)
}
