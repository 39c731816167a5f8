package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u *User) (int, error)
	FindByID(ctx context.Context, id int) (*User, error)
	// FindByContact ищет по email или телефону (то, что непустое).
	FindByContact(ctx context.Context, email, phone string) (*User, error)
	UpdateProfile(ctx context.Context, id int, name, email, profilePicture string) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdateSubscription(ctx context.Context, id int, tier string, hasPremium bool, expiresAt *time.Time) error
	// Delete удаляет учётную запись; связанные записи (настройки, сервисы,
	// бэкап, сессии) каскадно удаляются на уровне схемы.
	Delete(ctx context.Context, id int) (bool, error)
}
