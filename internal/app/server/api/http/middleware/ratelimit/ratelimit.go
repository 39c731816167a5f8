package ratelimit

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"

	"finbox/internal/app/server/api/http/middleware/auth"
)

// Limiter — токен-бакет на ключ: ID пользователя для авторизованных
// запросов, иначе адрес клиента.
type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	log      *slog.Logger
}

func New(requestsPerSecond, burst int, log *slog.Logger) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		log:      log.With(slog.String("component", "rate_limiter")),
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Простейшая защита от разрастания карты на анонимных ключах.
	if len(l.limiters) > 10000 {
		l.limiters = make(map[string]*rate.Limiter)
	}

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

// keyFor выбирает ключ бакета: ID пользователя после auth-middleware,
// иначе адрес клиента.
func keyFor(ctx context.Context, remoteAddr string) string {
	if userID, ok := auth.GetUserID(ctx); ok {
		return "user:" + strconv.Itoa(userID)
	}
	return remoteAddr
}

// Middleware возвращает middleware для Huma.
func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		key := keyFor(ctx.Context(), ctx.RemoteAddr())

		if !l.get(key).Allow() {
			l.log.Warn("rate limit exceeded",
				slog.String("key", key),
				slog.String("path", ctx.URL().Path))
			ctx.SetStatus(http.StatusTooManyRequests)
			ctx.SetHeader("Content-Type", "application/json")
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Too many requests",
			})
			return
		}

		next(ctx)
	}
}
