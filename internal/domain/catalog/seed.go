package catalog

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

func limit(n int) *int { return &n }

// defaultCatalog — стартовый набор сервисов приложения.
// Nil-лимит означает безлимит для уровня подписки.
var defaultCatalog = []Service{
	{
		Name:           "Income Tracking",
		Slug:           "mapato",
		Description:    "Track your revenue and earnings with comprehensive income management tools",
		Category:       CategoryFinance,
		Tier:           TierFree,
		UsageLimitFree: limit(100),
		Active:         true,
	},
	{
		Name:           "Expense Management",
		Slug:           "matumizi",
		Description:    "Monitor your spending patterns and manage expenses efficiently",
		Category:       CategoryFinance,
		Tier:           TierFree,
		UsageLimitFree: limit(150),
		Active:         true,
	},
	{
		Name:           "Cash Flow",
		Slug:           "cash_flow",
		Description:    "Visualize money movement and track cash flow patterns",
		Category:       CategoryAnalytics,
		Tier:           TierBoth,
		UsageLimitFree: limit(30),
		Active:         true,
	},
	{
		Name:           "Analytics",
		Slug:           "ripoti",
		Description:    "Detailed reports and insights for better financial decisions",
		Category:       CategoryAnalytics,
		Tier:           TierBoth,
		UsageLimitFree: limit(20),
		Active:         true,
	},
	{
		Name:           "Inventory",
		Slug:           "stock",
		Description:    "Manage your stock levels and inventory tracking",
		Category:       CategoryBusiness,
		Tier:           TierBoth,
		UsageLimitFree: limit(50),
		Active:         true,
	},
	{
		Name:           "Financial Goals",
		Slug:           "malengo",
		Description:    "Set and track your financial targets and goals",
		Category:       CategoryFinance,
		Tier:           TierFree,
		UsageLimitFree: limit(25),
		Active:         true,
	},
	{
		Name:           "Debts Owed",
		Slug:           "mikopo",
		Description:    "Track money you owe and manage debt payments",
		Category:       CategoryFinance,
		Tier:           TierFree,
		UsageLimitFree: limit(40),
		Active:         true,
	},
	{
		Name:           "Money Owed",
		Slug:           "madeni",
		Description:    "Track money owed to you and manage receivables",
		Category:       CategoryFinance,
		Tier:           TierFree,
		UsageLimitFree: limit(40),
		Active:         true,
	},
	{
		Name:           "Shared Accounts",
		Slug:           "shared_accounts",
		Description:    "Collaborative financial management with shared accounts",
		Category:       CategoryBusiness,
		Tier:           TierPremium,
		UsageLimitFree: limit(0),
		Active:         true,
	},
	{
		Name:           "Banking Options",
		Slug:           "banks",
		Description:    "Explore loan and financing options from various banks",
		Category:       CategoryFinance,
		Tier:           TierBoth,
		UsageLimitFree: limit(10),
		Active:         true,
	},
}

// Seed наполняет каталог стартовым набором сервисов.
// Идемпотентен: записи апсертятся по slug.
func (c *Catalog) Seed(ctx context.Context) error {
	for i := range defaultCatalog {
		svc := defaultCatalog[i]
		if err := c.repo.UpsertService(ctx, &svc); err != nil {
			return fmt.Errorf("catalog: seed %s: %w", svc.Slug, err)
		}
	}
	c.log.Info("catalog seeded", slog.Int("services", len(defaultCatalog)))
	return nil
}
