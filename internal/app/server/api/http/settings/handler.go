package settings

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"finbox/internal/app/server/api/http/middleware/auth"
	"finbox/internal/domain/settings"
)

type Handler struct {
	service    settings.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service settings.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.resetOp(), h.reset)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	s, err := h.service.Get(ctx, userID)
	if err != nil {
		h.log.Error("get settings", slog.String("error", err.Error()))
		return &getOutput{
			Body: SettingsResponse{Status: "Error", Error: "Failed to load settings"},
		}, nil
	}

	return &getOutput{
		Body: SettingsResponse{Status: "Ok", Settings: s},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	s, err := h.service.Update(ctx, userID, input.Body)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidValue) {
			return &updateOutput{
				Body: SettingsResponse{Status: "Error", Error: err.Error()},
			}, nil
		}
		h.log.Error("update settings", slog.String("error", err.Error()))
		return &updateOutput{
			Body: SettingsResponse{Status: "Error", Error: "Failed to update settings"},
		}, nil
	}

	return &updateOutput{
		Body: SettingsResponse{Status: "Ok", Settings: s},
	}, nil
}

func (h *Handler) reset(ctx context.Context, _ *resetInput) (*resetOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	s, err := h.service.Reset(ctx, userID)
	if err != nil {
		h.log.Error("reset settings", slog.String("error", err.Error()))
		return &resetOutput{
			Body: SettingsResponse{Status: "Error", Error: "Failed to reset settings"},
		}, nil
	}

	return &resetOutput{
		Body: SettingsResponse{Status: "Ok", Settings: s},
	}, nil
}
