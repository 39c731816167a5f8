package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/exp/slog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client — одно websocket-соединение аутентифицированного пользователя.
type Client struct {
	userID int
	conn   *websocket.Conn
	send   chan Envelope
	once   sync.Once
	log    *slog.Logger
}

func newClient(userID int, conn *websocket.Conn, log *slog.Logger) *Client {
	return &Client{
		userID: userID,
		conn:   conn,
		send:   make(chan Envelope, 32),
		log:    log,
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// enqueue ставит кадр в очередь отправки. false при переполнении буфера.
func (c *Client) enqueue(env Envelope) (ok bool) {
	defer func() {
		// Отправка в закрытый канал при гонке с close().
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case c.send <- env:
		return true
	default:
		c.log.Warn("ws send buffer full", slog.Int("user_id", c.userID))
		return false
	}
}

// readPump читает входящие кадры и передаёт их диспетчеру.
func (c *Client) readPump(dispatch func(c *Client, env Envelope)) {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("ws read", slog.Int("user_id", c.userID), slog.String("error", err.Error()))
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.enqueue(errorEnvelope("Invalid frame format"))
			continue
		}

		dispatch(c, env)
	}
}

// writePump пишет кадры из очереди и поддерживает ping/pong.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case env, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(env); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func errorEnvelope(msg string) Envelope {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return Envelope{Event: "message_error", Payload: raw}
}
