package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/message"
)

type MessageRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewMessageRepository(db *Storage, log *slog.Logger) *MessageRepository {
	return &MessageRepository{
		db:  db,
		log: log,
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *message.Message) (*message.Message, error) {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO messages (event_id, sender_id, sender_name, content, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		m.EventID, m.SenderID, m.SenderName, m.Content, m.Status).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return m, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id int) (*message.Message, error) {
	var m message.Message
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, event_id, sender_id, sender_name, content, status,
			created_at, updated_at
		FROM messages WHERE id = $1`, id).
		Scan(&m.ID, &m.EventID, &m.SenderID, &m.SenderName, &m.Content,
			&m.Status, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find message: %w", err)
	}
	return &m, nil
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.Pool().Exec(ctx,
		`UPDATE messages SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	return err
}

// History отдаёт последние сообщения комнаты в хронологическом порядке.
func (r *MessageRepository) History(ctx context.Context, eventID string) ([]message.Message, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, event_id, sender_id, sender_name, content, status,
			created_at, updated_at
		FROM (
			SELECT * FROM messages
			WHERE event_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC`, eventID, message.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("message history: %w", err)
	}
	defer rows.Close()

	var messages []message.Message
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.EventID, &m.SenderID, &m.SenderName,
			&m.Content, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) DeleteBySender(ctx context.Context, senderID int) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM messages WHERE sender_id = $1`, senderID)
	return err
}
