package settings

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

func (m *MockRepository) FindByUser(ctx context.Context, userID int) (*Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, s *Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) DeleteByUser(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("creates defaults on first access", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUser", ctx, 7).Return(nil, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(s *Settings) bool {
			return s.UserID == 7 && s.Currency == "TZS" && s.Theme == "system"
		})).Return(nil)

		svc := NewService(repo, slog.Default())
		got, err := svc.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "en", got.Language)
		assert.True(t, got.Backup.CloudSync)
		repo.AssertExpectations(t)
	})

	t.Run("returns existing document untouched", func(t *testing.T) {
		existing := Defaults(7)
		existing.Theme = "dark"

		repo := new(MockRepository)
		repo.On("FindByUser", ctx, 7).Return(existing, nil)

		svc := NewService(repo, slog.Default())
		got, err := svc.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "dark", got.Theme)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		existing := Defaults(7)

		repo := new(MockRepository)
		repo.On("FindByUser", ctx, 7).Return(existing, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		svc := NewService(repo, slog.Default())
		got, err := svc.Update(ctx, 7, UpdateRequest{
			Theme:    strPtr("dark"),
			Currency: strPtr("KES"),
		})
		require.NoError(t, err)
		assert.Equal(t, "dark", got.Theme)
		assert.Equal(t, "KES", got.Currency)
		assert.Equal(t, "en", got.Language)
		assert.Equal(t, 80, got.Financial.BudgetWarningThreshold)
	})

	t.Run("rejects unknown enum values", func(t *testing.T) {
		svc := NewService(new(MockRepository), slog.Default())

		tests := []UpdateRequest{
			{Language: strPtr("xx")},
			{Currency: strPtr("BTC")},
			{Theme: strPtr("neon")},
			{DateFormat: strPtr("YYYY/DD/MM")},
			{Backup: &Backup{Frequency: "hourly"}},
			{Financial: &Financial{BudgetWarningThreshold: 150, ExportFormat: "xlsx"}},
		}
		for _, req := range tests {
			_, err := svc.Update(ctx, 7, req)
			assert.ErrorIs(t, err, ErrInvalidValue)
		}
	})
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("Save", ctx, mock.MatchedBy(func(s *Settings) bool {
		return s.UserID == 7 && s.Theme == "system" && s.Language == "en"
	})).Return(nil)

	svc := NewService(repo, slog.Default())
	got, err := svc.Reset(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, Defaults(7), got)
	repo.AssertExpectations(t)
}
