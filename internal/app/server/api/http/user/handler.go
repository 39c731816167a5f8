package user

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"finbox/internal/app/server/api/http/middleware/auth"
	"finbox/internal/domain/session"
	"finbox/internal/domain/user"
)

// Handler обслуживает и публичные маршруты (register, login), и приватные:
// для приватных ему передаётся отдельный набор middleware с авторизацией.
type Handler struct {
	service        user.Servicer
	session        session.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware, authMiddleware huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		log:            log,
		middleware:     middleware,
		authMiddleware: authMiddleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.updateProfileOp(), h.updateProfile)
	huma.Register(api, h.changePasswordOp(), h.changePassword)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.upgradeOp(), h.upgrade)
	huma.Register(api, h.deleteAccountOp(), h.deleteAccount)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, user.RegisterRequest{
		Email:       input.Body.Email,
		PhoneNumber: input.Body.PhoneNumber,
		Name:        input.Body.Name,
		Password:    input.Body.Password,
	})
	if err != nil {
		return &registerOutput{
			Body: RegisterResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.PhoneNumber, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: "Invalid credentials"},
		}, nil
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: "Failed to create session"},
		}, nil
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, Status: "Ok"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *meInput) (*meOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	profile, err := h.service.Get(ctx, userID)
	if err != nil {
		return &meOutput{
			Body: ProfileResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &meOutput{
		Body: ProfileResponse{Status: "Ok", Profile: profile},
	}, nil
}

func (h *Handler) updateProfile(ctx context.Context, input *updateProfileInput) (*updateProfileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	profile, err := h.service.UpdateProfile(ctx, userID, user.UpdateProfileRequest{
		Name:           input.Body.Name,
		Email:          input.Body.Email,
		ProfilePicture: input.Body.ProfilePicture,
	})
	if err != nil {
		return &updateProfileOutput{
			Body: ProfileResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &updateProfileOutput{
		Body: ProfileResponse{Status: "Ok", Profile: profile},
	}, nil
}

func (h *Handler) changePassword(ctx context.Context, input *changePasswordInput) (*changePasswordOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.ChangePassword(ctx, userID, input.Body.CurrentPassword, input.Body.NewPassword)
	if errors.Is(err, user.ErrInvalidAuth) {
		return &changePasswordOutput{
			Body: StatusResponse{Status: "Error", Error: "Current password is incorrect"},
		}, nil
	}
	if err != nil {
		return &changePasswordOutput{
			Body: StatusResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &changePasswordOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	token := strings.TrimPrefix(input.Authorization, "Bearer ")
	if err := h.session.Revoke(ctx, token); err != nil {
		return &logoutOutput{
			Body: StatusResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &logoutOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) upgrade(ctx context.Context, input *upgradeInput) (*upgradeOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	profile, err := h.service.UpgradeToPremium(ctx, userID, input.Body.Months)
	if err != nil {
		return &upgradeOutput{
			Body: ProfileResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &upgradeOutput{
		Body: ProfileResponse{Status: "Ok", Profile: profile},
	}, nil
}

func (h *Handler) deleteAccount(ctx context.Context, _ *deleteAccountInput) (*deleteAccountOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID); err != nil {
		return &deleteAccountOutput{
			Body: StatusResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	// Все выданные токены пользователя отзываются вместе с учёткой.
	if err := h.session.RevokeAllForUser(ctx, userID); err != nil {
		h.log.Warn("failed to revoke sessions after account deletion",
			slog.Int("user_id", userID), slog.String("error", err.Error()))
	}

	return &deleteAccountOutput{Body: StatusResponse{Status: "Ok"}}, nil
}
