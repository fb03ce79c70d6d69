package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/session"
)

// PageHandler serves the static pages.
type PageHandler struct {
	sessions *session.Manager
}

// NewPageHandler creates a new page handler.
func NewPageHandler(sessions *session.Manager) *PageHandler {
	return &PageHandler{sessions: sessions}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	sess := h.sessions.Load(c)
	flashes := h.sessions.PopFlashes(c.Request().Context(), sess.ID)
	return render(c, http.StatusOK, "index", sess, flashes, echo.Map{
		"Title": "Home",
	})
}
