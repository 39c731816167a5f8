package settings

import "time"

// Notifications — настройки уведомлений пользователя.
type Notifications struct {
	Push          bool `json:"push"`
	Email         bool `json:"email"`
	SMS           bool `json:"sms"`
	Marketing     bool `json:"marketing"`
	Reminders     bool `json:"reminders"`
	WeeklyReports bool `json:"weeklyReports"`
}

// Financial — финансовые настройки.
type Financial struct {
	DefaultIncomeCategory  string `json:"defaultIncomeCategory"`
	DefaultExpenseCategory string `json:"defaultExpenseCategory"`
	// Процент бюджета, после которого показывается предупреждение.
	BudgetWarningThreshold int    `json:"budgetWarningThreshold"`
	AutoBackup             bool   `json:"autoBackup"`
	ExportFormat           string `json:"exportFormat"`
}

// Backup — настройки резервного копирования и синхронизации.
type Backup struct {
	AutoBackup bool   `json:"autoBackup"`
	Frequency  string `json:"frequency"`
	CloudSync  bool   `json:"cloudSync"`
}

// Settings — документ настроек пользователя, одна запись на пользователя.
type Settings struct {
	UserID        int           `json:"userId"`
	Language      string        `json:"language"`
	Currency      string        `json:"currency"`
	Theme         string        `json:"theme"`
	DateFormat    string        `json:"dateFormat"`
	Notifications Notifications `json:"notifications"`
	Financial     Financial     `json:"financial"`
	Backup        Backup        `json:"backup"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Defaults возвращает настройки по умолчанию для нового пользователя.
func Defaults(userID int) *Settings {
	return &Settings{
		UserID:     userID,
		Language:   "en",
		Currency:   "TZS",
		Theme:      "system",
		DateFormat: "DD/MM/YYYY",
		Notifications: Notifications{
			Push:          true,
			Email:         true,
			SMS:           false,
			Marketing:     false,
			Reminders:     true,
			WeeklyReports: true,
		},
		Financial: Financial{
			DefaultIncomeCategory:  "business",
			DefaultExpenseCategory: "general",
			BudgetWarningThreshold: 80,
			AutoBackup:             true,
			ExportFormat:           "xlsx",
		},
		Backup: Backup{
			AutoBackup: true,
			Frequency:  "weekly",
			CloudSync:  true,
		},
	}
}
