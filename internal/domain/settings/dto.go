package settings

// UpdateRequest — частичное обновление настроек. Nil-поля не меняются.
type UpdateRequest struct {
	Language      *string        `json:"language,omitempty"`
	Currency      *string        `json:"currency,omitempty"`
	Theme         *string        `json:"theme,omitempty"`
	DateFormat    *string        `json:"dateFormat,omitempty"`
	Notifications *Notifications `json:"notifications,omitempty"`
	Financial     *Financial     `json:"financial,omitempty"`
	Backup        *Backup        `json:"backup,omitempty"`
}
