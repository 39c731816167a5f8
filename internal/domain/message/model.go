package message

import "time"

// Статусы доставки сообщения.
const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

// Message — сообщение чата, привязанное к комнате (событию).
type Message struct {
	ID         int       `json:"id"`
	EventID    string    `json:"eventId"`
	SenderID   int       `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
