package ws

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/exp/slog"

	"finbox/internal/domain/message"
)

type sendMessagePayload struct {
	EventID    string `json:"eventId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	// Получатели вне комнаты события уведомляются через new_message.
	Recipients []int `json:"recipients,omitempty"`
}

type messageIDPayload struct {
	MessageID int `json:"messageId"`
}

type historyPayload struct {
	EventID string `json:"eventId"`
}

func (h *Handler) sendMessage(c *Client, raw json.RawMessage) {
	var p sendMessagePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.enqueue(errorEnvelope("Invalid send_message payload"))
		return
	}

	msg, err := h.messages.Send(context.Background(), p.EventID, c.userID, p.SenderName, p.Content)
	if err != nil {
		c.enqueue(errorEnvelope("Failed to send message"))
		return
	}

	// Эхо отправителю с присвоенным ID и статусом.
	h.hub.SendTo(c.userID, "receive_message", msg)

	for _, recipientID := range p.Recipients {
		if recipientID == c.userID {
			continue
		}
		h.hub.SendTo(recipientID, "new_message", map[string]any{
			"eventId":        msg.EventID,
			"senderName":     msg.SenderName,
			"messageContent": msg.Content,
			"messageId":      msg.ID,
		})
	}
}

func (h *Handler) markDelivered(c *Client, raw json.RawMessage) {
	var p messageIDPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.enqueue(errorEnvelope("Invalid payload"))
		return
	}

	msg, err := h.messages.MarkDelivered(context.Background(), p.MessageID)
	if err != nil {
		c.enqueue(errorEnvelope("Failed to mark message as delivered"))
		return
	}

	// Отправителю сообщаем об изменении статуса.
	h.hub.SendTo(msg.SenderID, "message_status_updated", map[string]any{
		"messageId": msg.ID,
		"status":    message.StatusDelivered,
		"userId":    c.userID,
	})

	h.hub.SendTo(c.userID, "message_delivered_confirmed", map[string]any{
		"messageId": msg.ID,
	})
}

func (h *Handler) markRead(c *Client, raw json.RawMessage) {
	var p messageIDPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.enqueue(errorEnvelope("Invalid payload"))
		return
	}

	msg, err := h.messages.MarkRead(context.Background(), p.MessageID)
	if err != nil {
		c.enqueue(errorEnvelope("Failed to mark message as read"))
		return
	}

	h.hub.SendTo(msg.SenderID, "message_status_updated", map[string]any{
		"messageId": msg.ID,
		"status":    message.StatusRead,
		"userId":    c.userID,
		"readAt":    time.Now().UTC(),
	})

	h.hub.SendTo(c.userID, "message_read_confirmed", map[string]any{
		"messageId": msg.ID,
	})
}

func (h *Handler) messageHistory(c *Client, raw json.RawMessage) {
	var p historyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.enqueue(errorEnvelope("Invalid payload"))
		return
	}

	msgs, err := h.messages.History(context.Background(), p.EventID)
	if err != nil {
		h.log.Error("ws message history", slog.String("error", err.Error()))
		c.enqueue(errorEnvelope("Failed to fetch messages"))
		return
	}

	h.hub.SendTo(c.userID, "message_history", msgs)
}

func (h *Handler) messageStatus(c *Client, raw json.RawMessage) {
	var p messageIDPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.enqueue(errorEnvelope("Invalid payload"))
		return
	}

	msg, err := h.messages.Get(context.Background(), p.MessageID)
	if err != nil {
		c.enqueue(errorEnvelope("Message not found"))
		return
	}

	h.hub.SendTo(c.userID, "message_status", map[string]any{
		"messageId": msg.ID,
		"status":    msg.Status,
		"createdAt": msg.CreatedAt,
	})
}
