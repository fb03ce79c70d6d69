package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskdeck/internal/handler"
	"taskdeck/internal/session"
)

// Register wires routes and middleware. Routes that act on tasks or
// dashboards sit behind the session-cookie guard; everything else is public.
func Register(
	e *echo.Echo,
	sessions *session.Manager,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", pageHandler.Home)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/contact", contactHandler.ShowContact)
	e.POST("/contact", contactHandler.Contact)

	// Secured routes (require an authenticated session cookie)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  sessions.Secret(),
		TokenLookup: "cookie:" + session.CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(session.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return sessions.RedirectToLogin(c)
		},
	}), sessions.RequireUser)

	secured.GET("/:user_id/dashboard", taskHandler.Dashboard)
	secured.GET("/create_task", taskHandler.ShowCreate)
	secured.POST("/create_task", taskHandler.Create)
	secured.GET("/edit-task/:task_id", taskHandler.ShowEdit)
	secured.POST("/edit-task/:task_id", taskHandler.Edit)
	secured.GET("/delete/:task_id", taskHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
