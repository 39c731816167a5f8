package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/catalog"
)

type CatalogRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewCatalogRepository(db *Storage, log *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:  db,
		log: log,
	}
}

const serviceColumns = `id, name, slug, description, category, tier,
	usage_limit_free, usage_limit_premium, active, created_at, updated_at`

func (r *CatalogRepository) ListActive(ctx context.Context, tiers []string) ([]catalog.Service, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+serviceColumns+` FROM services
		WHERE active AND tier = ANY($1)
		ORDER BY name`, tiers)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		var s catalog.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Category,
			&s.Tier, &s.UsageLimitFree, &s.UsageLimitPremium, &s.Active,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *CatalogRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	var s catalog.Service
	err := r.db.Pool().QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug).
		Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Category,
			&s.Tier, &s.UsageLimitFree, &s.UsageLimitPremium, &s.Active,
			&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &s, nil
}

func (r *CatalogRepository) UpsertService(ctx context.Context, s *catalog.Service) error {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO services
			(name, slug, description, category, tier, usage_limit_free,
			 usage_limit_premium, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			tier = EXCLUDED.tier,
			usage_limit_free = EXCLUDED.usage_limit_free,
			usage_limit_premium = EXCLUDED.usage_limit_premium,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING id`,
		s.Name, s.Slug, s.Description, s.Category, s.Tier,
		s.UsageLimitFree, s.UsageLimitPremium, s.Active).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ListForUser(ctx context.Context, userID int) ([]catalog.UserService, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, service_id, enabled, usage_count, last_used_at,
			created_at, updated_at
		FROM user_services WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user services: %w", err)
	}
	defer rows.Close()

	var records []catalog.UserService
	for rows.Next() {
		var us catalog.UserService
		if err := rows.Scan(&us.ID, &us.UserID, &us.ServiceID, &us.Enabled,
			&us.UsageCount, &us.LastUsedAt, &us.CreatedAt, &us.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user service: %w", err)
		}
		records = append(records, us)
	}
	return records, rows.Err()
}

func (r *CatalogRepository) FindUserService(ctx context.Context, userID, serviceID int) (*catalog.UserService, error) {
	var us catalog.UserService
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, user_id, service_id, enabled, usage_count, last_used_at,
			created_at, updated_at
		FROM user_services WHERE user_id = $1 AND service_id = $2`,
		userID, serviceID).
		Scan(&us.ID, &us.UserID, &us.ServiceID, &us.Enabled,
			&us.UsageCount, &us.LastUsedAt, &us.CreatedAt, &us.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user service: %w", err)
	}
	return &us, nil
}

func (r *CatalogRepository) SaveUserService(ctx context.Context, us *catalog.UserService) error {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO user_services (user_id, service_id, enabled, usage_count, last_used_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, service_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			usage_count = EXCLUDED.usage_count,
			last_used_at = EXCLUDED.last_used_at,
			updated_at = NOW()
		RETURNING id`,
		us.UserID, us.ServiceID, us.Enabled, us.UsageCount, us.LastUsedAt).Scan(&us.ID)
	if err != nil {
		return fmt.Errorf("save user service: %w", err)
	}
	return nil
}
