package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "taskdeck/internal/errors"
	"taskdeck/internal/session"
)

// render executes a page template with the session and any pending flash
// notices merged into the data.
func render(c echo.Context, status int, name string, sess *session.Session, flashes []string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	data["Session"] = sess
	data["Flashes"] = flashes
	return c.Render(status, name, data)
}

// renderError maps a failure through the central error mapping and shows the
// error page with its deterministic status and message.
func renderError(c echo.Context, sess *session.Session, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return render(c, httpErr.StatusCode, "error", sess, nil, echo.Map{
		"Title":   "Error",
		"Status":  httpErr.StatusCode,
		"Message": httpErr.Message,
	})
}

func dashboardPath(userID uint) string {
	return fmt.Sprintf("/%d/dashboard", userID)
}
