package ratelimit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"

	"finbox/internal/app/server/api/http/middleware/auth"
)

func TestLimiter_RejectsOverBurst(t *testing.T) {
	// 1 rps с бакетом на 2 токена: третий мгновенный запрос отклоняется
	l := New(1, 2, slog.Default())

	assert.True(t, l.get("user:1").Allow())
	assert.True(t, l.get("user:1").Allow())
	assert.False(t, l.get("user:1").Allow())
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(1, 1, slog.Default())

	assert.True(t, l.get("user:1").Allow())
	assert.False(t, l.get("user:1").Allow())

	// Исчерпание бакета одного пользователя не задевает остальных
	assert.True(t, l.get("user:2").Allow())
	assert.True(t, l.get("10.0.0.1:5000").Allow())
}

func TestLimiter_MapResetDropsState(t *testing.T) {
	l := New(1, 1, slog.Default())

	assert.True(t, l.get("user:1").Allow())
	assert.False(t, l.get("user:1").Allow())

	for i := 0; i <= 10001; i++ {
		l.get(fmt.Sprintf("10.0.0.%d:1", i))
	}

	// После сброса карты ключ получает свежий бакет
	assert.True(t, l.get("user:1").Allow())
}

func TestKeyFor(t *testing.T) {
	t.Run("AuthenticatedUsesUserID", func(t *testing.T) {
		ctx := auth.WithUserID(context.Background(), 42)
		assert.Equal(t, "user:42", keyFor(ctx, "10.0.0.1:5000"))
	})

	t.Run("AnonymousFallsBackToRemoteAddr", func(t *testing.T) {
		assert.Equal(t, "10.0.0.1:5000", keyFor(context.Background(), "10.0.0.1:5000"))
	})
}
