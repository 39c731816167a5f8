package ws

import (
	"encoding/json"
	"sync"

	"golang.org/x/exp/slog"
)

// Envelope — единый формат кадра: имя события плюс произвольный payload.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Hub хранит активные соединения по ID пользователя.
// Повторное подключение вытесняет предыдущее соединение пользователя.
type Hub struct {
	mu      sync.RWMutex
	clients map[int]*Client
	log     *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[int]*Client),
		log:     log,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	prev, ok := h.clients[c.userID]
	h.clients[c.userID] = c
	h.mu.Unlock()

	if ok {
		prev.close()
	}

	h.log.Info("ws connected", slog.Int("user_id", c.userID))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if h.clients[c.userID] == c {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()

	h.log.Info("ws disconnected", slog.Int("user_id", c.userID))
}

// SendTo отправляет событие пользователю. false, если пользователь офлайн.
func (h *Hub) SendTo(userID int, event string, payload any) bool {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("ws marshal payload", slog.String("event", event), slog.String("error", err.Error()))
		return false
	}

	return c.enqueue(Envelope{Event: event, Payload: raw})
}

// Online сообщает, подключён ли пользователь.
func (h *Hub) Online(userID int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}
