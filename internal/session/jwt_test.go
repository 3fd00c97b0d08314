package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

const testSecret = "test-secret-key-for-sessions"

func TestIssueAndValidate(t *testing.T) {
	issuer := NewIssuer(testSecret)

	token, expiresAt, err := issuer.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 5 hour validity window
	assert.WithinDuration(t, time.Now().Add(5*time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, TokenIssuer, claims.Issuer)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _, err := NewIssuer(testSecret).Issue("user-42")
	require.NoError(t, err)

	_, err = NewIssuer("a-different-secret").Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestValidate_Malformed(t *testing.T) {
	issuer := NewIssuer(testSecret)

	for _, raw := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := issuer.Validate(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidCredential, "raw=%q", raw)
	}
}

func TestValidate_Expired(t *testing.T) {
	issuer := NewIssuer(testSecret)
	issuer.tokenDuration = -time.Minute

	token, _, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestValidate_StillValidNearExpiry(t *testing.T) {
	issuer := NewIssuer(testSecret)
	issuer.tokenDuration = 2 * time.Minute

	token, _, err := issuer.Issue("user-42")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

func TestValidate_RejectsUnsignedAlg(t *testing.T) {
	// alg=none token with otherwise plausible claims
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer(testSecret).Validate(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestValidate_EmptySubject(t *testing.T) {
	issuer := NewIssuer(testSecret)

	token, _, err := issuer.Issue("")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestWriteSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSessionCookie(rec, "tok-123", time.Now().Add(TokenDuration))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, CookieJWT, c.Name)
	assert.Equal(t, "tok-123", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestWriteUserDataCookie_NotHTTPOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteUserDataCookie(rec, "encoded-record")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieUserData, cookies[0].Name)
	assert.False(t, cookies[0].HttpOnly, "client code reads this cookie")
}

func TestClearRobloxUserCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearRobloxUserCookie(rec)

	header := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, CookieRobloxUser+"="))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
