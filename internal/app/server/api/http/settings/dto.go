package settings

import "finbox/internal/domain/settings"

type getInput struct{}

type getOutput struct {
	Body SettingsResponse
}

type updateInput struct {
	Body settings.UpdateRequest
}

type updateOutput struct {
	Body SettingsResponse
}

type resetInput struct{}

type resetOutput struct {
	Body SettingsResponse
}

type SettingsResponse struct {
	Status   string             `json:"status"`
	Error    string             `json:"error,omitempty"`
	Settings *settings.Settings `json:"settings,omitempty"`
}
