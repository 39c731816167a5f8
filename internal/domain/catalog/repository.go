package catalog

import "context"

// Repository описывает доступ к каталогу сервисов и пользовательским записям.
type Repository interface {
	// ListActive returns active services whose tier is in tiers, sorted by name.
	ListActive(ctx context.Context, tiers []string) ([]Service, error)
	FindBySlug(ctx context.Context, slug string) (*Service, error)
	// UpsertService inserts or updates a catalog entry by slug.
	UpsertService(ctx context.Context, s *Service) error

	ListForUser(ctx context.Context, userID int) ([]UserService, error)
	FindUserService(ctx context.Context, userID, serviceID int) (*UserService, error)
	// SaveUserService inserts or updates by the (user, service) pair.
	SaveUserService(ctx context.Context, us *UserService) error
}
