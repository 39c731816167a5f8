package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/message"
	"finbox/internal/domain/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Клиенты — мобильные и десктопные приложения, Origin не проверяем.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler апгрейдит GET /ws?token=... и обслуживает события чата
// и ретрансляцию cashflow-запросов между устройствами.
type Handler struct {
	hub      *Hub
	sessions session.Servicer
	messages message.Servicer
	log      *slog.Logger
}

func NewHandler(hub *Hub, sessions session.Servicer, messages message.Servicer, log *slog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		sessions: sessions,
		messages: messages,
		log:      log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := h.sessions.Validate(r.Context(), token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade", slog.String("error", err.Error()))
		return
	}

	c := newClient(userID, conn, h.log)
	h.hub.register(c)

	go c.writePump()
	go func() {
		defer func() {
			h.hub.unregister(c)
			c.close()
		}()
		c.readPump(h.dispatch)
	}()
}

func (h *Handler) dispatch(c *Client, env Envelope) {
	switch env.Event {
	case "send_message":
		h.sendMessage(c, env.Payload)
	case "mark_message_delivered":
		h.markDelivered(c, env.Payload)
	case "mark_message_read":
		h.markRead(c, env.Payload)
	case "get_message_history":
		h.messageHistory(c, env.Payload)
	case "get_message_status":
		h.messageStatus(c, env.Payload)
	case "request_cashflow":
		h.requestCashflow(c, env.Payload)
	case "successful_generation_cashflow_data":
		h.cashflowGenerated(c, env.Payload)
	case "cashflow_raw_data_generation_error":
		h.cashflowFailed(c, env.Payload)
	case "cashflow_status":
		h.cashflowStatus(c, env.Payload)
	default:
		c.enqueue(errorEnvelope("Unknown event: " + env.Event))
	}
}
