package message

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// Servicer описывает операции над сообщениями чата.
type Servicer interface {
	Send(ctx context.Context, eventID string, senderID int, senderName, content string) (*Message, error)
	Get(ctx context.Context, id int) (*Message, error)
	MarkDelivered(ctx context.Context, id int) (*Message, error)
	MarkRead(ctx context.Context, id int) (*Message, error)
	History(ctx context.Context, eventID string) ([]Message, error)
}

// Service реализует Servicer поверх Repository.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "message_service")),
	}
}

// Send сохраняет новое сообщение со статусом sent.
func (s *Service) Send(ctx context.Context, eventID string, senderID int, senderName, content string) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	m, err := s.repo.Create(ctx, &Message{
		EventID:    eventID,
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
		Status:     StatusSent,
	})
	if err != nil {
		return nil, fmt.Errorf("message: send: %w", err)
	}
	return m, nil
}

// Get возвращает сообщение по ID.
func (s *Service) Get(ctx context.Context, id int) (*Message, error) {
	return s.find(ctx, id)
}

// MarkDelivered переводит сообщение в статус delivered.
// Уже прочитанное сообщение не понижается обратно.
func (s *Service) MarkDelivered(ctx context.Context, id int) (*Message, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusSent {
		return m, nil
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusDelivered); err != nil {
		return nil, fmt.Errorf("message: mark delivered: %w", err)
	}
	m.Status = StatusDelivered
	return m, nil
}

// MarkRead переводит сообщение в статус read.
func (s *Service) MarkRead(ctx context.Context, id int) (*Message, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusRead); err != nil {
		return nil, fmt.Errorf("message: mark read: %w", err)
	}
	m.Status = StatusRead
	return m, nil
}

// History возвращает последние сообщения комнаты в хронологическом порядке.
func (s *Service) History(ctx context.Context, eventID string) ([]Message, error) {
	messages, err := s.repo.History(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("message: history: %w", err)
	}
	return messages, nil
}

func (s *Service) find(ctx context.Context, id int) (*Message, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("message: find: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return m, nil
}
