package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/forms"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// ContactHandler handles the contact form, available to visitors and
// signed-in users alike.
type ContactHandler struct {
	contactService service.ContactService
	sessions       *session.Manager
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService, sessions *session.Manager) *ContactHandler {
	return &ContactHandler{contactService: contactService, sessions: sessions}
}

// ShowContact renders the contact form.
func (h *ContactHandler) ShowContact(c echo.Context) error {
	sess := h.sessions.Load(c)
	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "contact", sess, flashes, echo.Map{
		"Title": "Contact",
		"Form":  &forms.ContactForm{},
	})
}

// Contact sends one message to the site owner. A transport failure surfaces
// as an error page rather than being swallowed; success redirects to the
// dashboard when signed in, home otherwise.
func (h *ContactHandler) Contact(c echo.Context) error {
	sess := h.sessions.Load(c)

	var form forms.ContactForm
	if err := c.Bind(&form); err != nil {
		return renderError(c, sess, err)
	}
	if err := c.Validate(&form); err != nil {
		return render(c, http.StatusBadRequest, "contact", sess, nil, echo.Map{
			"Title":  "Contact",
			"Form":   &form,
			"Errors": forms.Errors(err),
		})
	}

	if err := h.contactService.Send(c.Request().Context(), form.Email, form.Message); err != nil {
		return renderError(c, sess, err)
	}

	h.sessions.AddFlash(c.Request().Context(), sess.ID, "Your message has been sent.")
	if sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, dashboardPath(sess.UserID))
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
