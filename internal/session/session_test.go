package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", CookieName)
	return nil
}

func TestManagerIssueAndLoad(t *testing.T) {
	m := NewManager("test-secret", nil)

	c, rec := newTestContext(t, nil)
	sess, err := m.Issue(c, 7, "a@x.com", "A")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, uint(7), sess.UserID)
	assert.NotEmpty(t, sess.ID)

	// The cookie round-trips to the same user on the next request.
	c2, _ := newTestContext(t, issuedCookie(t, rec))
	loaded := m.Load(c2)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, uint(7), loaded.UserID)
	assert.Equal(t, "a@x.com", loaded.Email)
	assert.Equal(t, "A", loaded.Name)
}

func TestManagerLoadWithoutCookieIsAnonymous(t *testing.T) {
	m := NewManager("test-secret", nil)

	c, rec := newTestContext(t, nil)
	sess := m.Load(c)
	assert.False(t, sess.Authenticated())
	assert.NotEmpty(t, sess.ID)

	// An anonymous cookie is minted so flash notices have a stable key.
	ck := issuedCookie(t, rec)
	assert.NotEmpty(t, ck.Value)
}

func TestManagerLoadRejectsTamperedCookie(t *testing.T) {
	m := NewManager("test-secret", nil)

	c, rec := newTestContext(t, nil)
	sess, err := m.Issue(c, 7, "a@x.com", "A")
	require.NoError(t, err)

	forged := NewManager("other-secret", nil)
	c2, _ := newTestContext(t, issuedCookie(t, rec))
	loaded := forged.Load(c2)
	assert.False(t, loaded.Authenticated())
	assert.NotEqual(t, sess.ID, loaded.ID)
}

func TestManagerClearIsIdempotent(t *testing.T) {
	m := NewManager("test-secret", nil)

	// Clearing with no active session is not an error.
	c, rec := newTestContext(t, nil)
	m.Clear(c)
	ck := issuedCookie(t, rec)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}

func TestRequireUser(t *testing.T) {
	m := NewManager("test-secret", nil)
	next := func(c echo.Context) error {
		sess := FromContext(c)
		if !sess.Authenticated() {
			return errors.New("no session in context")
		}
		return c.NoContent(http.StatusOK)
	}

	t.Run("valid user token passes through", func(t *testing.T) {
		c, rec := newTestContext(t, nil)
		_, err := m.Issue(c, 7, "a@x.com", "A")
		require.NoError(t, err)

		token, err := jwt.ParseWithClaims(issuedCookie(t, rec).Value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return m.Secret(), nil
		})
		require.NoError(t, err)

		c2, rec2 := newTestContext(t, nil)
		c2.Set("user", token)
		require.NoError(t, m.RequireUser(next)(c2))
		assert.Equal(t, http.StatusOK, rec2.Code)
	})

	t.Run("anonymous token redirects to login", func(t *testing.T) {
		c, rec := newTestContext(t, nil)
		_, err := m.Issue(c, 0, "", "")
		require.NoError(t, err)

		token, err := jwt.ParseWithClaims(issuedCookie(t, rec).Value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return m.Secret(), nil
		})
		require.NoError(t, err)

		c2, rec2 := newTestContext(t, nil)
		c2.Set("user", token)
		require.NoError(t, m.RequireUser(next)(c2))
		assert.Equal(t, http.StatusSeeOther, rec2.Code)
		assert.Equal(t, "/login", rec2.Header().Get(echo.HeaderLocation))
	})

	t.Run("missing token redirects to login", func(t *testing.T) {
		c, rec := newTestContext(t, nil)
		require.NoError(t, m.RequireUser(next)(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestFlashesDegradeWithoutRedis(t *testing.T) {
	m := NewManager("test-secret", nil)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	// A nil cache client swallows writes; notices are simply absent.
	m.AddFlash(ctx, "sess-1", "hello")
	assert.Nil(t, m.PopFlashes(ctx, "sess-1"))
}
