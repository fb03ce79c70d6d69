package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"taskdeck/internal/cache"
)

const (
	// CookieName is the session cookie; the sole conduit for "current user".
	CookieName = "taskdeck_session"
	// Expiry is the lifetime of a browser session.
	Expiry = 7 * 24 * time.Hour
)

// Claims is the signed payload of a session cookie. UserID zero marks an
// anonymous session, which exists only to carry flash notices.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Session is the per-request view of the cookie.
type Session struct {
	ID     string
	UserID uint
	Email  string
	Name   string
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// Manager signs and validates session cookies and owns their flash notices.
type Manager struct {
	secret []byte
	cache  *cache.Client
}

// NewManager creates a session manager with the given signing secret.
func NewManager(secret string, cache *cache.Client) *Manager {
	return &Manager{secret: []byte(secret), cache: cache}
}

// Secret exposes the signing key for the route guard middleware.
func (m *Manager) Secret() []byte {
	return m.secret
}

// Issue establishes an authenticated session for the user and sets the cookie.
func (m *Manager) Issue(c echo.Context, userID uint, email, name string) (*Session, error) {
	return m.issue(c, userID, email, name)
}

// Clear terminates the session unconditionally. Clearing with no active
// session is not an error.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load returns the request's session, minting an anonymous one (and setting
// its cookie) when the cookie is absent, expired, or tampered with.
func (m *Manager) Load(c echo.Context) *Session {
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		if sess, err := m.parse(cookie.Value); err == nil {
			return sess
		}
	}
	sess, err := m.issue(c, 0, "", "")
	if err != nil {
		// Signing can only fail on a broken secret; fall back to a
		// cookie-less session so the request still renders.
		return &Session{ID: uuid.NewString()}
	}
	return sess
}

func (m *Manager) issue(c echo.Context, userID uint, email, name string) (*Session, error) {
	id := uuid.NewString()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(Expiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return &Session{ID: id, UserID: userID, Email: email, Name: name}, nil
}

func (m *Manager) parse(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &Session{ID: claims.ID, UserID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
