package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) IsActive(ctx context.Context, tokenHash string) (bool, error) {
	args := m.Called(ctx, tokenHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockRepository) RevokeAllForUser(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_CreateAndValidate(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("Create", ctx, 42, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
	repo.On("IsActive", ctx, mock.AnythingOfType("string")).Return(true, nil)

	svc := NewService(repo, slog.Default(), "test-secret", time.Hour)

	token, err := svc.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		svc := NewService(new(MockRepository), slog.Default(), "test-secret", time.Hour)
		_, err := svc.Validate(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		repoA := new(MockRepository)
		repoA.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		issuer := NewService(repoA, slog.Default(), "secret-a", time.Hour)
		token, err := issuer.Create(ctx, 1)
		require.NoError(t, err)

		verifier := NewService(new(MockRepository), slog.Default(), "secret-b", time.Hour)
		_, err = verifier.Validate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		repo.On("IsActive", ctx, mock.AnythingOfType("string")).Return(false, nil)

		svc := NewService(repo, slog.Default(), "test-secret", time.Hour)
		token, err := svc.Create(ctx, 1)
		require.NoError(t, err)

		_, err = svc.Validate(ctx, token)
		assert.ErrorIs(t, err, ErrRevoked)
	})

	t.Run("expired token", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := NewService(repo, slog.Default(), "test-secret", time.Hour)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := svc.Create(ctx, 1)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.Validate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_Revoke(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("Revoke", ctx, mock.AnythingOfType("string")).Return(nil)

	svc := NewService(repo, slog.Default(), "test-secret", time.Hour)
	token, err := svc.Create(ctx, 1)
	require.NoError(t, err)

	assert.NoError(t, svc.Revoke(ctx, token))
	repo.AssertExpectations(t)
}
