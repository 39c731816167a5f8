package message

import "context"

// Количество сообщений, возвращаемых в истории комнаты.
const HistoryLimit = 100

// Repository хранит сообщения чата.
type Repository interface {
	Create(ctx context.Context, m *Message) (*Message, error)
	FindByID(ctx context.Context, id int) (*Message, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	// History returns the last HistoryLimit messages of a room in
	// chronological order.
	History(ctx context.Context, eventID string) ([]Message, error)
	DeleteBySender(ctx context.Context, senderID int) error
}
