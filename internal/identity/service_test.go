package identity

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByPlatformID(ctx context.Context, platform, externalID string) (*domain.User, error) {
	args := m.Called(ctx, platform, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindOrCreateByPlatformID(ctx context.Context, platform, externalID, username, avatarURL string) (*domain.User, error) {
	args := m.Called(ctx, platform, externalID, username, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UnlinkPlatform(ctx context.Context, userID, platform string) error {
	args := m.Called(ctx, userID, platform)
	return args.Error(0)
}

func robloxProfile() domain.Profile {
	return domain.Profile{
		Platform:   domain.PlatformRoblox,
		ExternalID: "rbx-1",
		Username:   "builderman",
		AvatarURL:  "https://cdn.example/b.png",
	}
}

func TestResolve_CreatesAndCaches(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	user := &domain.User{ID: "u-1", RobloxID: "rbx-1"}
	repo.On("FindOrCreateByPlatformID", mock.Anything, domain.PlatformRoblox, "rbx-1", "builderman", "https://cdn.example/b.png").
		Return(user, nil).Once()

	got, err := svc.Resolve(context.Background(), robloxProfile())
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	// Second resolution is served from the cache; the single .Once()
	// expectation would fail if the store were hit again.
	got, err = svc.Resolve(context.Background(), robloxProfile())
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	repo.AssertExpectations(t)
}

func TestResolve_InvalidPlatform(t *testing.T) {
	svc := NewService(new(MockUserRepository))

	_, err := svc.Resolve(context.Background(), domain.Profile{Platform: "myspace", ExternalID: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestResolve_EmptyExternalID(t *testing.T) {
	svc := NewService(new(MockUserRepository))

	_, err := svc.Resolve(context.Background(), domain.Profile{Platform: domain.PlatformRoblox})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_StoreFailurePropagates(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("FindOrCreateByPlatformID", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrStoreUnavailable)

	_, err := svc.Resolve(context.Background(), robloxProfile())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestResolve_ConcurrentSameProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	user := &domain.User{ID: "u-1", RobloxID: "rbx-1"}
	// The repository guarantees one account per external id; every call
	// returns the same account regardless of interleaving.
	repo.On("FindOrCreateByPlatformID", mock.Anything, domain.PlatformRoblox, "rbx-1", "builderman", "https://cdn.example/b.png").
		Return(user, nil)

	const workers = 16
	var wg sync.WaitGroup
	ids := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := svc.Resolve(context.Background(), robloxProfile())
			if err == nil {
				ids[i] = got.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, "u-1", ids[i])
	}
}

func TestLinkDiscord_ResolvesAccount(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	user := &domain.User{ID: "u-2", DiscordID: "disc-9"}
	repo.On("FindOrCreateByPlatformID", mock.Anything, domain.PlatformDiscord, "disc-9", "gamer", "https://cdn.example/g.png").
		Return(user, nil).Once()

	got, err := svc.LinkDiscord(context.Background(), "disc-9", "gamer", "https://cdn.example/g.png")
	require.NoError(t, err)
	assert.Equal(t, "u-2", got.ID)

	repo.AssertExpectations(t)
}

func TestLinkDiscord_EmptyID(t *testing.T) {
	svc := NewService(new(MockUserRepository))

	_, err := svc.LinkDiscord(context.Background(), "", "gamer", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnlinkRoblox_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1", RobloxID: "rbx-1"}, nil).Once()
	repo.On("UnlinkPlatform", mock.Anything, "u-1", domain.PlatformRoblox).
		Return(nil).Once()

	require.NoError(t, svc.UnlinkRoblox(context.Background(), "u-1"))
	repo.AssertExpectations(t)
}

func TestUnlinkRoblox_NothingLinked(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1", DiscordID: "disc-1"}, nil).Once()

	err := svc.UnlinkRoblox(context.Background(), "u-1")
	assert.ErrorIs(t, err, domain.ErrNothingToUnlink)
	repo.AssertNotCalled(t, "UnlinkPlatform", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlinkRoblox_InvalidatesCachedResolution(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	linked := &domain.User{ID: "u-1", RobloxID: "rbx-1"}
	repo.On("FindOrCreateByPlatformID", mock.Anything, domain.PlatformRoblox, "rbx-1", "builderman", "https://cdn.example/b.png").
		Return(linked, nil).Twice()
	repo.On("GetByID", mock.Anything, "u-1").Return(linked, nil).Once()
	repo.On("UnlinkPlatform", mock.Anything, "u-1", domain.PlatformRoblox).Return(nil).Once()

	_, err := svc.Resolve(context.Background(), robloxProfile())
	require.NoError(t, err)

	require.NoError(t, svc.UnlinkRoblox(context.Background(), "u-1"))

	// The cached entry for rbx-1 must be gone, so this hits the store again.
	_, err = svc.Resolve(context.Background(), robloxProfile())
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestGetUser_PassesThrough(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
