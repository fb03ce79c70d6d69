package session

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const contextKey = "session"

// LoginNotice is flashed whenever an unauthenticated request hits a
// protected route.
const LoginNotice = "You need to log in or register to use the app."

// RequireUser runs behind the JWT guard and converts validated cookie claims
// into a Session in the echo context. Anonymous tokens (valid signature,
// zero user id) are bounced to the login page like missing ones.
func (m *Manager) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return m.RedirectToLogin(c)
		}
		claims, ok := token.Claims.(*Claims)
		if !ok || claims.UserID == 0 {
			return m.RedirectToLogin(c)
		}
		c.Set(contextKey, &Session{
			ID:     claims.ID,
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		})
		return next(c)
	}
}

// RedirectToLogin flashes the login notice and redirects. Used both by
// RequireUser and as the JWT guard's error handler.
func (m *Manager) RedirectToLogin(c echo.Context) error {
	sess := m.Load(c)
	m.AddFlash(c.Request().Context(), sess.ID, LoginNotice)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// FromContext returns the authenticated session placed by RequireUser, or
// nil outside a protected route.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}
