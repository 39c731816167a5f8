package settings

import "context"

// Repository хранит документы настроек, по одному на пользователя.
type Repository interface {
	// FindByUser returns nil when the user has no settings row yet.
	FindByUser(ctx context.Context, userID int) (*Settings, error)
	// Save inserts or overwrites the user's settings document.
	Save(ctx context.Context, s *Settings) error
	DeleteByUser(ctx context.Context, userID int) error
}
