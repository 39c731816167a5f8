package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (int, error) {
	args := m.Called(ctx, u)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByContact(ctx context.Context, email, phone string) (*User, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, id int, name, email, profilePicture string) error {
	args := m.Called(ctx, id, name, email, profilePicture)
	return args.Error(0)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockRepository) UpdateSubscription(ctx context.Context, id int, tier string, hasPremium bool, expiresAt *time.Time) error {
	args := m.Called(ctx, id, tier, hasPremium, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with trial and runs hooks", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
			return u.Email == "jane@example.com" &&
				u.SubscriptionType == TierFree &&
				u.Role == RoleOwner &&
				u.TrialEndsAt.Sub(u.TrialStartedAt) == TrialDays*24*time.Hour
		})).Return(10, nil)

		hookCalled := false
		hook := func(_ context.Context, u *User) error {
			hookCalled = true
			assert.Equal(t, 10, u.ID)
			return nil
		}

		svc := NewService(repo, NewValidator(), slog.Default(), hook)
		id, err := svc.Register(ctx, RegisterRequest{
			Email:    "Jane@Example.com",
			Name:     "Jane",
			Password: "Passw0rd",
		})

		require.NoError(t, err)
		assert.Equal(t, 10, id)
		assert.True(t, hookCalled)
		repo.AssertExpectations(t)
	})

	t.Run("hook failure does not break registration", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.Anything).Return(11, nil)

		hook := func(_ context.Context, _ *User) error {
			return errors.New("provisioning down")
		}

		svc := NewService(repo, NewValidator(), slog.Default(), hook)
		id, err := svc.Register(ctx, RegisterRequest{
			Email:    "jane@example.com",
			Name:     "Jane",
			Password: "Passw0rd",
		})

		require.NoError(t, err)
		assert.Equal(t, 11, id)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := NewService(new(MockRepository), NewValidator(), slog.Default())
		_, err := svc.Register(ctx, RegisterRequest{Name: "Jane", Password: "Passw0rd"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd"), bcrypt.MinCost)
	stored := &User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByContact", ctx, "jane@example.com", "").Return(stored, nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		u, err := svc.Authenticate(ctx, "jane@example.com", "", "Passw0rd")

		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByContact", ctx, "jane@example.com", "").Return(stored, nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		_, err := svc.Authenticate(ctx, "jane@example.com", "", "wrong")

		assert.ErrorIs(t, err, ErrInvalidAuth)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByContact", ctx, "ghost@example.com", "").Return(nil, ErrNotFound)

		svc := NewService(repo, NewValidator(), slog.Default())
		_, err := svc.Authenticate(ctx, "ghost@example.com", "", "Passw0rd")

		assert.ErrorIs(t, err, ErrInvalidAuth)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("OldPass1"), bcrypt.MinCost)
	stored := &User{ID: 1, PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, 1).Return(stored, nil)
		repo.On("UpdatePassword", ctx, 1, mock.AnythingOfType("string")).Return(nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		err := svc.ChangePassword(ctx, 1, "OldPass1", "NewPass1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, 1).Return(stored, nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		err := svc.ChangePassword(ctx, 1, "wrong", "NewPass1")

		assert.ErrorIs(t, err, ErrInvalidAuth)
	})

	t.Run("weak new password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByID", ctx, 1).Return(stored, nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		err := svc.ChangePassword(ctx, 1, "OldPass1", "weak")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_UpgradeToPremium(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("FindByID", ctx, 1).Return(&User{ID: 1, SubscriptionType: TierFree}, nil)
	repo.On("UpdateSubscription", ctx, 1, TierPremium, true, mock.MatchedBy(func(exp *time.Time) bool {
		return exp != nil && exp.After(time.Now())
	})).Return(nil)

	svc := NewService(repo, NewValidator(), slog.Default())
	profile, err := svc.UpgradeToPremium(ctx, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, TierPremium, profile.User.SubscriptionType)
	assert.True(t, profile.HasActiveAccess)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, 1).Return(true, nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("missing user", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Delete", ctx, 2).Return(false, nil)

		svc := NewService(repo, NewValidator(), slog.Default())
		assert.ErrorIs(t, svc.Delete(ctx, 2), ErrNotFound)
	})
}

func TestUser_SubscriptionHelpers(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("active trial", func(t *testing.T) {
		u := &User{SubscriptionType: TierFree, TrialEndsAt: now.AddDate(0, 0, 3)}
		assert.True(t, u.HasActiveAccess(now))
		assert.False(t, u.IsTrialExpired(now))
		assert.Equal(t, 3, u.RemainingTrialDays(now))
	})

	t.Run("expired trial", func(t *testing.T) {
		u := &User{SubscriptionType: TierFree, TrialEndsAt: now.AddDate(0, 0, -1)}
		assert.False(t, u.HasActiveAccess(now))
		assert.True(t, u.IsTrialExpired(now))
		assert.Zero(t, u.RemainingTrialDays(now))
	})

	t.Run("active premium", func(t *testing.T) {
		exp := now.AddDate(0, 1, 0)
		u := &User{SubscriptionType: TierPremium, HasActivePremium: true, PremiumExpiresAt: &exp}
		assert.True(t, u.HasActiveAccess(now))
		assert.Zero(t, u.RemainingTrialDays(now))
	})

	t.Run("lapsed premium", func(t *testing.T) {
		exp := now.AddDate(0, -1, 0)
		u := &User{SubscriptionType: TierPremium, HasActivePremium: true, PremiumExpiresAt: &exp}
		assert.False(t, u.HasActiveAccess(now))
	})
}
