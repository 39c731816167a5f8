package services

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"finbox/internal/app/server/api/http/middleware/auth"
	"finbox/internal/domain/catalog"
	"finbox/internal/domain/user"
)

type Handler struct {
	service    catalog.Servicer
	users      user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service catalog.Servicer, users user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		users:      users,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.mineOp(), h.mine)
	huma.Register(api, h.toggleOp(), h.toggle)
	huma.Register(api, h.usageOp(), h.usage)
}

// tier возвращает тариф текущего пользователя.
func (h *Handler) tier(ctx context.Context) (int, string, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return 0, "", huma.Error401Unauthorized("Unauthorized")
	}

	profile, err := h.users.Get(ctx, userID)
	if err != nil {
		return 0, "", err
	}

	return userID, profile.User.SubscriptionType, nil
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	_, tier, err := h.tier(ctx)
	if err != nil {
		return nil, err
	}

	svcs, err := h.service.ListForTier(ctx, tier)
	if err != nil {
		h.log.Error("list services", slog.String("error", err.Error()))
		return &listOutput{
			Body: ListResponse{Status: "Error", Error: "Failed to load services"},
		}, nil
	}

	return &listOutput{
		Body: ListResponse{Status: "Ok", Services: svcs},
	}, nil
}

func (h *Handler) mine(ctx context.Context, _ *mineInput) (*mineOutput, error) {
	userID, tier, err := h.tier(ctx)
	if err != nil {
		return nil, err
	}

	views, err := h.service.ListUserServices(ctx, userID, tier)
	if err != nil {
		h.log.Error("list user services", slog.String("error", err.Error()))
		return &mineOutput{
			Body: MineResponse{Status: "Error", Error: "Failed to load services"},
		}, nil
	}

	return &mineOutput{
		Body: MineResponse{Status: "Ok", Services: views},
	}, nil
}

func (h *Handler) toggle(ctx context.Context, input *toggleInput) (*toggleOutput, error) {
	userID, tier, err := h.tier(ctx)
	if err != nil {
		return nil, err
	}

	us, err := h.service.Toggle(ctx, userID, input.Slug, tier)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return &toggleOutput{
				Body: ToggleResponse{Status: "Error", Error: "Service not found"},
			}, nil
		case errors.Is(err, catalog.ErrInaccessible):
			return &toggleOutput{
				Body: ToggleResponse{Status: "Error", Error: "Service requires a premium subscription"},
			}, nil
		}
		return &toggleOutput{
			Body: ToggleResponse{Status: "Error", Error: "Failed to toggle service"},
		}, nil
	}

	return &toggleOutput{
		Body: ToggleResponse{Status: "Ok", Slug: input.Slug, Enabled: us.Enabled},
	}, nil
}

func (h *Handler) usage(ctx context.Context, input *usageInput) (*usageOutput, error) {
	userID, tier, err := h.tier(ctx)
	if err != nil {
		return nil, err
	}

	res, err := h.service.IncrementUsage(ctx, userID, input.Slug, tier)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return &usageOutput{
				Body: UsageResponse{Status: "Error", Error: "Service not found"},
			}, nil
		case errors.Is(err, catalog.ErrInaccessible):
			return &usageOutput{
				Body: UsageResponse{Status: "Error", Error: "Service requires a premium subscription"},
			}, nil
		case errors.Is(err, catalog.ErrLimitExceeded):
			return &usageOutput{
				Body: UsageResponse{Status: "Error", Error: "Usage limit exceeded"},
			}, nil
		}
		return &usageOutput{
			Body: UsageResponse{Status: "Error", Error: "Failed to record usage"},
		}, nil
	}

	return &usageOutput{
		Body: UsageResponse{Status: "Ok", Usage: res},
	}, nil
}
