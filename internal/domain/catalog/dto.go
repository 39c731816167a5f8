package catalog

import "time"

// ServiceView — сервис каталога вместе с пользовательским состоянием.
type ServiceView struct {
	Service    Service    `json:"service"`
	Enabled    bool       `json:"enabled"`
	UsageCount int        `json:"usageCount"`
	UsageLimit *int       `json:"usageLimit"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}

// UsageResult возвращается после учёта использования сервиса.
type UsageResult struct {
	UsageCount int  `json:"usageCount"`
	UsageLimit *int `json:"usageLimit"`
	Remaining  *int `json:"remaining"`
}
