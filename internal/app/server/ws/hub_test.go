package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHub_SendTo(t *testing.T) {
	hub := NewHub(slog.Default())

	t.Run("Offline", func(t *testing.T) {
		assert.False(t, hub.SendTo(1, "receive_message", map[string]string{"hello": "world"}))
		assert.False(t, hub.Online(1))
	})

	t.Run("Online", func(t *testing.T) {
		c := newClient(1, nil, slog.Default())
		hub.register(c)

		assert.True(t, hub.Online(1))
		assert.True(t, hub.SendTo(1, "receive_message", map[string]string{"hello": "world"}))

		env := <-c.send
		assert.Equal(t, "receive_message", env.Event)

		var payload map[string]string
		assert.NoError(t, json.Unmarshal(env.Payload, &payload))
		assert.Equal(t, "world", payload["hello"])

		hub.unregister(c)
		assert.False(t, hub.Online(1))
	})
}

func TestHub_ReconnectEvictsPrevious(t *testing.T) {
	hub := NewHub(slog.Default())

	first := newClient(7, nil, slog.Default())
	hub.register(first)

	second := newClient(7, nil, slog.Default())
	hub.register(second)

	// Очередь первого соединения закрыта, событие уходит второму.
	_, open := <-first.send
	assert.False(t, open)

	assert.True(t, hub.SendTo(7, "ping", nil))
	env := <-second.send
	assert.Equal(t, "ping", env.Event)

	// Отключение первого не должно выбить второго из реестра.
	hub.unregister(first)
	assert.True(t, hub.Online(7))
}

func TestClient_EnqueueAfterClose(t *testing.T) {
	c := newClient(3, nil, slog.Default())
	c.close()

	assert.False(t, c.enqueue(Envelope{Event: "ping"}))
}

func TestValidateCashflowRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     cashflowRequest
		wantMsg string
	}{
		{
			name:    "Valid yearly",
			req:     cashflowRequest{BusinessName: "Duka", Period: "yearly", Year: 2025},
			wantMsg: "",
		},
		{
			name:    "Valid monthly",
			req:     cashflowRequest{BusinessName: "Duka", Period: "monthly", Year: 2025, Month: 3},
			wantMsg: "",
		},
		{
			name:    "Missing fields",
			req:     cashflowRequest{Period: "yearly", Year: 2025},
			wantMsg: "Missing required fields",
		},
		{
			name:    "Monthly without month",
			req:     cashflowRequest{BusinessName: "Duka", Period: "monthly", Year: 2025},
			wantMsg: "Month is required for monthly period",
		},
		{
			name:    "Quarterly without quarter",
			req:     cashflowRequest{BusinessName: "Duka", Period: "quarterly", Year: 2025},
			wantMsg: "Quarter is required for quarterly period",
		},
		{
			name:    "Unknown period",
			req:     cashflowRequest{BusinessName: "Duka", Period: "weekly", Year: 2025},
			wantMsg: "Invalid period type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, validateCashflowRequest(tt.req))
		})
	}
}
