package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/session"
)

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Resolve(ctx context.Context, profile domain.Profile) (*domain.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockIdentityService) LinkDiscord(ctx context.Context, externalID, username, avatarURL string) (*domain.User, error) {
	args := m.Called(ctx, externalID, username, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockIdentityService) UnlinkRoblox(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockIdentityService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func gateRequest(t *testing.T, svc *MockIdentityService, token string) (*httptest.ResponseRecorder, *domain.User) {
	t.Helper()

	issuer := session.NewIssuer("middleware-test-secret")

	var seen *domain.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := UserFromContext(r.Context()); ok {
			seen = u
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()

	Auth(issuer, svc)(inner).ServeHTTP(rec, req)
	return rec, seen
}

func issueToken(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := session.NewIssuer("middleware-test-secret").Issue(userID)
	require.NoError(t, err)
	return token
}

func TestAuth_MissingToken(t *testing.T) {
	svc := new(MockIdentityService)

	rec, _ := gateRequest(t, svc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, MsgUnauthorized, body["error"])
	svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestAuth_InvalidToken(t *testing.T) {
	svc := new(MockIdentityService)

	rec, _ := gateRequest(t, svc, "garbage-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, MsgInvalidToken, body["error"])
	svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestAuth_WrongSecretToken(t *testing.T) {
	svc := new(MockIdentityService)

	other, _, err := session.NewIssuer("some-other-secret").Issue("u-1")
	require.NoError(t, err)

	rec, _ := gateRequest(t, svc, other)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidTokenNoAccount(t *testing.T) {
	svc := new(MockIdentityService)
	svc.On("GetUser", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	rec, _ := gateRequest(t, svc, issueToken(t, "ghost"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, MsgUserNotFound, body["error"])
}

func TestAuth_StoreFailure(t *testing.T) {
	svc := new(MockIdentityService)
	svc.On("GetUser", mock.Anything, "u-1").Return(nil, domain.ErrStoreUnavailable)

	rec, _ := gateRequest(t, svc, issueToken(t, "u-1"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuth_Success(t *testing.T) {
	svc := new(MockIdentityService)
	account := &domain.User{ID: "u-1", RobloxID: "rbx-1", ProductIDs: []string{"prod-axe"}}
	svc.On("GetUser", mock.Anything, "u-1").Return(account, nil)

	rec, seen := gateRequest(t, svc, issueToken(t, "u-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u-1", seen.ID)
	assert.Equal(t, []string{"prod-axe"}, seen.ProductIDs)
}

func TestUserFromContext_Absent(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}

func TestContextWithUser_RoundTrip(t *testing.T) {
	ctx := ContextWithUser(context.Background(), &domain.User{ID: "u-9"})
	user, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u-9", user.ID)
}
