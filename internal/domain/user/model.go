package user

import "time"

const (
	AuthTypeLocal  = "local"
	AuthTypeGoogle = "google"

	RoleOwner    = "owner"
	RoleEmployee = "employee"

	TierFree    = "free"
	TierPremium = "premium"

	// TrialDays — длительность бесплатного пробного периода.
	TrialDays = 7
)

// User — учётная запись владельца данных. Требуется хотя бы один контакт:
// email или телефон.
type User struct {
	ID               int        `json:"id"`
	Email            string     `json:"email,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	Name             string     `json:"name"`
	ProfilePicture   string     `json:"profile_picture,omitempty"`
	PasswordHash     string     `json:"-"`
	AuthType         string     `json:"auth_type"`
	GoogleID         string     `json:"-"`
	Role             string     `json:"role"`
	SubscriptionType string     `json:"subscription_type"`
	TrialStartedAt   time.Time  `json:"trial_started_at"`
	TrialEndsAt      time.Time  `json:"trial_ends_at"`
	HasActivePremium bool       `json:"has_active_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasActiveAccess: активная премиум-подписка или непросроченный trial.
func (u *User) HasActiveAccess(now time.Time) bool {
	if u.HasActivePremium && u.PremiumExpiresAt != nil && u.PremiumExpiresAt.After(now) {
		return true
	}
	return u.SubscriptionType == TierFree && u.TrialEndsAt.After(now)
}

func (u *User) IsTrialExpired(now time.Time) bool {
	return u.SubscriptionType == TierFree && now.After(u.TrialEndsAt)
}

// RemainingTrialDays возвращает число оставшихся дней trial (0 для premium).
func (u *User) RemainingTrialDays(now time.Time) int {
	if u.SubscriptionType != TierFree {
		return 0
	}
	remaining := u.TrialEndsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}
