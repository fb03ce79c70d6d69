package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/forms"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// User-visible notices for the auth flows.
const (
	noticeEmailTaken    = "You've already signed up with this email. Please log in instead."
	noticeNoSuchEmail   = "There's no user with that email. Please try again."
	noticeWrongPassword = "Wrong password. Please try again."
)

// AuthHandler handles registration, login, and logout pages.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	sess := h.sessions.Load(c)
	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "register", sess, flashes, echo.Map{
		"Title": "Register",
		"Form":  &forms.RegisterForm{},
	})
}

// Register creates a user, signs them in, and sends them to their dashboard.
// A duplicate email leaves the user table untouched and bounces to login.
func (h *AuthHandler) Register(c echo.Context) error {
	sess := h.sessions.Load(c)

	var form forms.RegisterForm
	if err := c.Bind(&form); err != nil {
		return renderError(c, sess, err)
	}
	if err := c.Validate(&form); err != nil {
		return render(c, http.StatusBadRequest, "register", sess, nil, echo.Map{
			"Title":  "Register",
			"Form":   &form,
			"Errors": forms.Errors(err),
		})
	}

	user, err := h.authService.Register(c.Request().Context(), form.Email, form.Password, form.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			h.sessions.AddFlash(c.Request().Context(), sess.ID, noticeEmailTaken)
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return renderError(c, sess, err)
	}

	if _, err := h.sessions.Issue(c, user.ID, user.Email, user.Name); err != nil {
		return renderError(c, sess, err)
	}
	return c.Redirect(http.StatusSeeOther, dashboardPath(user.ID))
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	sess := h.sessions.Load(c)
	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "login", sess, flashes, echo.Map{
		"Title": "Log in",
		"Form":  &forms.LoginForm{},
	})
}

// Login verifies credentials and establishes a session. Unknown email and
// wrong password get distinct notices, matching the registration flow's
// redirect-plus-notice shape.
func (h *AuthHandler) Login(c echo.Context) error {
	sess := h.sessions.Load(c)

	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return renderError(c, sess, err)
	}
	if err := c.Validate(&form); err != nil {
		return render(c, http.StatusBadRequest, "login", sess, nil, echo.Map{
			"Title":  "Log in",
			"Form":   &form,
			"Errors": forms.Errors(err),
		})
	}

	user, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoSuchEmail):
			h.sessions.AddFlash(c.Request().Context(), sess.ID, noticeNoSuchEmail)
			return c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, apperrors.ErrWrongPassword):
			h.sessions.AddFlash(c.Request().Context(), sess.ID, noticeWrongPassword)
			return c.Redirect(http.StatusSeeOther, "/login")
		default:
			return renderError(c, sess, err)
		}
	}

	if _, err := h.sessions.Issue(c, user.ID, user.Email, user.Name); err != nil {
		return renderError(c, sess, err)
	}
	return c.Redirect(http.StatusSeeOther, dashboardPath(user.ID))
}

// Logout terminates the session unconditionally and redirects home.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
