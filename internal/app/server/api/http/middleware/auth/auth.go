package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const UserIDKey contextKey = "userID"

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ctx.Header("Authorization")

		if len(token) < 7 || token[:7] != "Bearer " {
			a.log.Debug("missing bearer token")
			unauthorized(ctx)
			return
		}

		// Валидируем токен
		userID, err := a.session.Validate(ctx.Context(), token[7:])
		if err != nil {
			a.log.Debug("token validation failed", slog.String("error", err.Error()))
			unauthorized(ctx)
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}

func unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
