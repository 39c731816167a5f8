package catalog

import "time"

// Уровни подписки, которым доступен сервис.
const (
	TierFree    = "free"
	TierPremium = "premium"
	TierBoth    = "both"
)

// Категории сервисов каталога.
const (
	CategoryFinance   = "finance"
	CategoryBusiness  = "business"
	CategoryAnalytics = "analytics"
	CategoryReporting = "reporting"
	CategoryTools     = "tools"
)

// Service — запись каталога сервисов.
// Nil-лимит означает безлимитное использование.
type Service struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Tier              string    `json:"tier"`
	UsageLimitFree    *int      `json:"usageLimitFree"`
	UsageLimitPremium *int      `json:"usageLimitPremium"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// AccessibleFor reports whether a subscriber of the given tier may use the
// service. Inactive services are hidden from everyone; premium-only services
// require a premium subscription.
func (s *Service) AccessibleFor(subscriptionType string) bool {
	if !s.Active {
		return false
	}
	switch s.Tier {
	case TierFree, TierBoth:
		return true
	case TierPremium:
		return subscriptionType == TierPremium
	default:
		return false
	}
}

// UsageLimit returns the usage cap for the tier, nil meaning unlimited.
func (s *Service) UsageLimit(subscriptionType string) *int {
	if subscriptionType == TierPremium {
		return s.UsageLimitPremium
	}
	return s.UsageLimitFree
}

// UserService — включённость и счётчик использования сервиса для пользователя.
// Уникальна по паре (UserID, ServiceID).
type UserService struct {
	ID         int        `json:"id"`
	UserID     int        `json:"userId"`
	ServiceID  int        `json:"serviceId"`
	Enabled    bool       `json:"enabled"`
	UsageCount int        `json:"usageCount"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
