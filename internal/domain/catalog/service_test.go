package catalog

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

func (m *MockRepository) ListActive(ctx context.Context, tiers []string) ([]Service, error) {
	args := m.Called(ctx, tiers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Service), args.Error(1)
}

func (m *MockRepository) FindBySlug(ctx context.Context, slug string) (*Service, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Service), args.Error(1)
}

func (m *MockRepository) UpsertService(ctx context.Context, s *Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) ListForUser(ctx context.Context, userID int) ([]UserService, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]UserService), args.Error(1)
}

func (m *MockRepository) FindUserService(ctx context.Context, userID, serviceID int) (*UserService, error) {
	args := m.Called(ctx, userID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserService), args.Error(1)
}

func (m *MockRepository) SaveUserService(ctx context.Context, us *UserService) error {
	args := m.Called(ctx, us)
	return args.Error(0)
}

func TestService_AccessibleFor(t *testing.T) {
	tests := []struct {
		name    string
		service Service
		tier    string
		want    bool
	}{
		{"free service for free user", Service{Tier: TierFree, Active: true}, TierFree, true},
		{"free service for premium user", Service{Tier: TierFree, Active: true}, TierPremium, true},
		{"both service for free user", Service{Tier: TierBoth, Active: true}, TierFree, true},
		{"premium service for free user", Service{Tier: TierPremium, Active: true}, TierFree, false},
		{"premium service for premium user", Service{Tier: TierPremium, Active: true}, TierPremium, true},
		{"inactive service for anyone", Service{Tier: TierFree, Active: false}, TierPremium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.service.AccessibleFor(tt.tier))
		})
	}
}

func TestCatalog_ListForTier(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("ListActive", ctx, []string{TierFree, TierBoth}).
		Return([]Service{{Slug: "mapato"}}, nil)
	repo.On("ListActive", ctx, []string{TierFree, TierPremium, TierBoth}).
		Return([]Service{{Slug: "mapato"}, {Slug: "shared_accounts"}}, nil)

	c := NewCatalog(repo, slog.Default())

	free, err := c.ListForTier(ctx, TierFree)
	require.NoError(t, err)
	assert.Len(t, free, 1)

	premium, err := c.ListForTier(ctx, TierPremium)
	require.NoError(t, err)
	assert.Len(t, premium, 2)
}

func TestCatalog_ListUserServices(t *testing.T) {
	ctx := context.Background()
	lastUsed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MockRepository)
	repo.On("ListActive", ctx, []string{TierFree, TierBoth}).Return([]Service{
		{ID: 1, Slug: "mapato", Tier: TierFree, Active: true, UsageLimitFree: limit(100)},
		{ID: 2, Slug: "ripoti", Tier: TierBoth, Active: true, UsageLimitFree: limit(20)},
	}, nil)
	repo.On("ListForUser", ctx, 7).Return([]UserService{
		{UserID: 7, ServiceID: 1, Enabled: false, UsageCount: 3, LastUsedAt: &lastUsed},
	}, nil)

	c := NewCatalog(repo, slog.Default())
	views, err := c.ListUserServices(ctx, 7, TierFree)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.False(t, views[0].Enabled)
	assert.Equal(t, 3, views[0].UsageCount)
	assert.Equal(t, 100, *views[0].UsageLimit)

	// no record yet: enabled by default, zero usage
	assert.True(t, views[1].Enabled)
	assert.Equal(t, 0, views[1].UsageCount)
}

func TestCatalog_Toggle(t *testing.T) {
	ctx := context.Background()
	svc := &Service{ID: 1, Slug: "mapato", Tier: TierFree, Active: true}

	t.Run("flips existing record", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindBySlug", ctx, "mapato").Return(svc, nil)
		repo.On("FindUserService", ctx, 7, 1).
			Return(&UserService{UserID: 7, ServiceID: 1, Enabled: true}, nil)
		repo.On("SaveUserService", ctx, mock.MatchedBy(func(us *UserService) bool {
			return !us.Enabled
		})).Return(nil)

		c := NewCatalog(repo, slog.Default())
		us, err := c.Toggle(ctx, 7, "mapato", TierFree)
		require.NoError(t, err)
		assert.False(t, us.Enabled)
		repo.AssertExpectations(t)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindBySlug", ctx, "nope").Return(nil, nil)

		c := NewCatalog(repo, slog.Default())
		_, err := c.Toggle(ctx, 7, "nope", TierFree)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("premium-only service for free user", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindBySlug", ctx, "shared_accounts").
			Return(&Service{ID: 9, Slug: "shared_accounts", Tier: TierPremium, Active: true}, nil)

		c := NewCatalog(repo, slog.Default())
		_, err := c.Toggle(ctx, 7, "shared_accounts", TierFree)
		assert.ErrorIs(t, err, ErrInaccessible)
	})
}

func TestCatalog_IncrementUsage(t *testing.T) {
	ctx := context.Background()
	svc := &Service{ID: 1, Slug: "ripoti", Tier: TierBoth, Active: true, UsageLimitFree: limit(2)}

	t.Run("counts usage and reports remaining", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindBySlug", ctx, "ripoti").Return(svc, nil)
		repo.On("FindUserService", ctx, 7, 1).
			Return(&UserService{UserID: 7, ServiceID: 1, Enabled: true, UsageCount: 0}, nil)
		repo.On("SaveUserService", ctx, mock.MatchedBy(func(us *UserService) bool {
			return us.UsageCount == 1 && us.LastUsedAt != nil
		})).Return(nil)

		c := NewCatalog(repo, slog.Default())
		res, err := c.IncrementUsage(ctx, 7, "ripoti", TierFree)
		require.NoError(t, err)
		assert.Equal(t, 1, res.UsageCount)
		assert.Equal(t, 1, *res.Remaining)
	})

	t.Run("rejects over the limit", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindBySlug", ctx, "ripoti").Return(svc, nil)
		repo.On("FindUserService", ctx, 7, 1).
			Return(&UserService{UserID: 7, ServiceID: 1, Enabled: true, UsageCount: 2}, nil)

		c := NewCatalog(repo, slog.Default())
		_, err := c.IncrementUsage(ctx, 7, "ripoti", TierFree)
		assert.ErrorIs(t, err, ErrLimitExceeded)
		repo.AssertNotCalled(t, "SaveUserService", mock.Anything, mock.Anything)
	})

	t.Run("premium tier is unlimited", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindBySlug", ctx, "ripoti").Return(svc, nil)
		repo.On("FindUserService", ctx, 7, 1).
			Return(&UserService{UserID: 7, ServiceID: 1, Enabled: true, UsageCount: 1000}, nil)
		repo.On("SaveUserService", ctx, mock.Anything).Return(nil)

		c := NewCatalog(repo, slog.Default())
		res, err := c.IncrementUsage(ctx, 7, "ripoti", TierPremium)
		require.NoError(t, err)
		assert.Equal(t, 1001, res.UsageCount)
		assert.Nil(t, res.Remaining)
	})
}

func TestCatalog_EnableDefaults(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("ListActive", ctx, []string{TierFree, TierPremium, TierBoth}).Return([]Service{
		{ID: 1, Slug: "mapato", Tier: TierFree, Active: true},
		{ID: 9, Slug: "shared_accounts", Tier: TierPremium, Active: true},
	}, nil)
	repo.On("SaveUserService", ctx, mock.MatchedBy(func(us *UserService) bool {
		return us.ServiceID == 1 && us.Enabled
	})).Return(nil)
	repo.On("SaveUserService", ctx, mock.MatchedBy(func(us *UserService) bool {
		return us.ServiceID == 9 && !us.Enabled
	})).Return(nil)

	c := NewCatalog(repo, slog.Default())
	require.NoError(t, c.EnableDefaults(ctx, 7, TierFree))
	repo.AssertExpectations(t)
}

func TestCatalog_Seed(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("UpsertService", ctx, mock.AnythingOfType("*catalog.Service")).Return(nil)

	c := NewCatalog(repo, slog.Default())
	require.NoError(t, c.Seed(ctx))
	repo.AssertNumberOfCalls(t, "UpsertService", len(defaultCatalog))
}
