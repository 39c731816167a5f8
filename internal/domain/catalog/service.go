package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Servicer описывает операции над каталогом сервисов.
type Servicer interface {
	ListForTier(ctx context.Context, subscriptionType string) ([]Service, error)
	ListUserServices(ctx context.Context, userID int, subscriptionType string) ([]ServiceView, error)
	Toggle(ctx context.Context, userID int, slug, subscriptionType string) (*UserService, error)
	IncrementUsage(ctx context.Context, userID int, slug, subscriptionType string) (*UsageResult, error)
	EnableDefaults(ctx context.Context, userID int, subscriptionType string) error
	Seed(ctx context.Context) error
}

// Catalog реализует Servicer поверх Repository.
type Catalog struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewCatalog(repo Repository, log *slog.Logger) *Catalog {
	return &Catalog{
		repo: repo,
		log:  log.With(slog.String("component", "catalog_service")),
		now:  time.Now,
	}
}

func tiersFor(subscriptionType string) []string {
	if subscriptionType == TierPremium {
		return []string{TierFree, TierPremium, TierBoth}
	}
	return []string{TierFree, TierBoth}
}

// ListForTier возвращает активные сервисы, доступные данному уровню подписки.
func (c *Catalog) ListForTier(ctx context.Context, subscriptionType string) ([]Service, error) {
	services, err := c.repo.ListActive(ctx, tiersFor(subscriptionType))
	if err != nil {
		return nil, fmt.Errorf("catalog: list for tier: %w", err)
	}
	return services, nil
}

// ListUserServices joins the accessible catalog with the user's enablement
// records. Services the user never touched show up enabled with a zero
// usage count.
func (c *Catalog) ListUserServices(ctx context.Context, userID int, subscriptionType string) ([]ServiceView, error) {
	services, err := c.repo.ListActive(ctx, tiersFor(subscriptionType))
	if err != nil {
		return nil, fmt.Errorf("catalog: list user services: %w", err)
	}
	records, err := c.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("catalog: list user services: %w", err)
	}

	byService := make(map[int]UserService, len(records))
	for _, r := range records {
		byService[r.ServiceID] = r
	}

	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		view := ServiceView{
			Service:    svc,
			Enabled:    true,
			UsageLimit: svc.UsageLimit(subscriptionType),
		}
		if r, ok := byService[svc.ID]; ok {
			view.Enabled = r.Enabled
			view.UsageCount = r.UsageCount
			view.LastUsedAt = r.LastUsedAt
		}
		views = append(views, view)
	}
	return views, nil
}

// Toggle переключает включённость сервиса для пользователя.
func (c *Catalog) Toggle(ctx context.Context, userID int, slug, subscriptionType string) (*UserService, error) {
	svc, err := c.findAccessible(ctx, slug, subscriptionType)
	if err != nil {
		return nil, err
	}

	us, err := c.repo.FindUserService(ctx, userID, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog: toggle: %w", err)
	}
	if us == nil {
		us = &UserService{UserID: userID, ServiceID: svc.ID, Enabled: false}
	}
	us.Enabled = !us.Enabled

	if err := c.repo.SaveUserService(ctx, us); err != nil {
		return nil, fmt.Errorf("catalog: toggle: %w", err)
	}
	c.log.Info("service toggled",
		slog.Int("user_id", userID),
		slog.String("slug", slug),
		slog.Bool("enabled", us.Enabled))
	return us, nil
}

// IncrementUsage учитывает одно использование сервиса, отклоняя запрос
// при исчерпании лимита уровня подписки.
func (c *Catalog) IncrementUsage(ctx context.Context, userID int, slug, subscriptionType string) (*UsageResult, error) {
	svc, err := c.findAccessible(ctx, slug, subscriptionType)
	if err != nil {
		return nil, err
	}

	us, err := c.repo.FindUserService(ctx, userID, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog: increment usage: %w", err)
	}
	if us == nil {
		us = &UserService{UserID: userID, ServiceID: svc.ID, Enabled: true}
	}

	limit := svc.UsageLimit(subscriptionType)
	if limit != nil && us.UsageCount >= *limit {
		return nil, fmt.Errorf("%w: %s", ErrLimitExceeded, slug)
	}

	now := c.now()
	us.UsageCount++
	us.LastUsedAt = &now
	if err := c.repo.SaveUserService(ctx, us); err != nil {
		return nil, fmt.Errorf("catalog: increment usage: %w", err)
	}

	res := &UsageResult{UsageCount: us.UsageCount, UsageLimit: limit}
	if limit != nil {
		remaining := *limit - us.UsageCount
		res.Remaining = &remaining
	}
	return res, nil
}

// EnableDefaults создаёт записи пользователя для всех активных сервисов.
// Вызывается при регистрации: недоступные уровню подписки сервисы
// создаются выключенными.
func (c *Catalog) EnableDefaults(ctx context.Context, userID int, subscriptionType string) error {
	services, err := c.repo.ListActive(ctx, []string{TierFree, TierPremium, TierBoth})
	if err != nil {
		return fmt.Errorf("catalog: enable defaults: %w", err)
	}
	for i := range services {
		us := &UserService{
			UserID:    userID,
			ServiceID: services[i].ID,
			Enabled:   services[i].AccessibleFor(subscriptionType),
		}
		if err := c.repo.SaveUserService(ctx, us); err != nil {
			return fmt.Errorf("catalog: enable defaults: %w", err)
		}
	}
	c.log.Info("default services enabled",
		slog.Int("user_id", userID),
		slog.Int("count", len(services)))
	return nil
}

func (c *Catalog) findAccessible(ctx context.Context, slug, subscriptionType string) (*Service, error) {
	svc, err := c.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("catalog: find service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if !svc.AccessibleFor(subscriptionType) {
		return nil, fmt.Errorf("%w: %s", ErrInaccessible, slug)
	}
	return svc, nil
}
