package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, msg *Message) (*Message, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) History(ctx context.Context, eventID string) ([]Message, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockRepository) DeleteBySender(ctx context.Context, senderID int) error {
	args := m.Called(ctx, senderID)
	return args.Error(0)
}

func TestService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("persists with status sent", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(m *Message) bool {
			return m.Status == StatusSent && m.EventID == "room-1" && m.SenderID == 7
		})).Return(&Message{ID: 1, EventID: "room-1", SenderID: 7, Status: StatusSent}, nil)

		svc := NewService(repo, slog.Default())
		m, err := svc.Send(ctx, "room-1", 7, "Asha", "habari")
		require.NoError(t, err)
		assert.Equal(t, 1, m.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		svc := NewService(new(MockRepository), slog.Default())
		_, err := svc.Send(ctx, "room-1", 7, "Asha", "   ")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestService_MarkDelivered(t *testing.T) {
	ctx := context.Background()

	t.Run("updates sent message", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, 1).Return(&Message{ID: 1, Status: StatusSent}, nil)
		repo.On("UpdateStatus", ctx, 1, StatusDelivered).Return(nil)

		svc := NewService(repo, slog.Default())
		m, err := svc.MarkDelivered(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, m.Status)
	})

	t.Run("does not downgrade a read message", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, 1).Return(&Message{ID: 1, Status: StatusRead}, nil)

		svc := NewService(repo, slog.Default())
		m, err := svc.MarkDelivered(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, StatusRead, m.Status)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown message", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, 99).Return(nil, nil)

		svc := NewService(repo, slog.Default())
		_, err := svc.MarkDelivered(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("FindByID", ctx, 1).Return(&Message{ID: 1, Status: StatusDelivered}, nil)
	repo.On("UpdateStatus", ctx, 1, StatusRead).Return(nil)

	svc := NewService(repo, slog.Default())
	m, err := svc.MarkRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusRead, m.Status)
}

func TestService_History(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("History", ctx, "room-1").Return([]Message{{ID: 1}, {ID: 2}}, nil)

	svc := NewService(repo, slog.Default())
	got, err := svc.History(ctx, "room-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
