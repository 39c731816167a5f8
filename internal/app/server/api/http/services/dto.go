package services

import "finbox/internal/domain/catalog"

type listInput struct{}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Status   string            `json:"status"`
	Error    string            `json:"error,omitempty"`
	Services []catalog.Service `json:"services,omitempty"`
}

type mineInput struct{}

type mineOutput struct {
	Body MineResponse
}

type MineResponse struct {
	Status   string                `json:"status"`
	Error    string                `json:"error,omitempty"`
	Services []catalog.ServiceView `json:"services,omitempty"`
}

type toggleInput struct {
	Slug string `path:"slug"`
}

type toggleOutput struct {
	Body ToggleResponse
}

type ToggleResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Enabled bool   `json:"enabled"`
}

type usageInput struct {
	Slug string `path:"slug"`
}

type usageOutput struct {
	Body UsageResponse
}

type UsageResponse struct {
	Status string               `json:"status"`
	Error  string               `json:"error,omitempty"`
	Usage  *catalog.UsageResult `json:"usage,omitempty"`
}
