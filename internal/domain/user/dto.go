package user

// RegisterRequest — входные данные регистрации.
type RegisterRequest struct {
	Email       string
	PhoneNumber string
	Name        string
	Password    string
}

// UpdateProfileRequest — частичное обновление профиля. Пустые поля не меняются.
type UpdateProfileRequest struct {
	Name           string
	Email          string
	ProfilePicture string
}

// Profile — представление пользователя с вычисленными полями подписки.
type Profile struct {
	User               User `json:"user"`
	HasActiveAccess    bool `json:"has_active_access"`
	IsTrialExpired     bool `json:"is_trial_expired"`
	RemainingTrialDays int  `json:"remaining_trial_days"`
}
