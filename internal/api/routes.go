// routes.go - Route and middleware registration
package api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Summarizer     Summarizer
	Mailer         Mailer
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Upload  UploadHandler
	Summary SummaryHandler
	Email   EmailHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(),
		Upload:  NewUploadHandler(deps.Logger),
		Summary: NewSummaryHandler(deps.Summarizer, deps.Logger),
		Email:   NewEmailHandler(deps.Mailer, deps.Logger),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", handlers.Health.HandleHealth)
	apiGroup.POST("/upload", handlers.Upload.HandleUpload)
	apiGroup.POST("/generate-summary", handlers.Summary.HandleGenerateSummary)
	apiGroup.POST("/send-email", handlers.Email.HandleSendEmail)
}

// SetupMiddleware installs the error handler and the middleware chain shared
// by every route.
func SetupMiddleware(e *echo.Echo, deps *Dependencies) {
	e.HTTPErrorHandler = NewErrorHandler(deps.Logger)

	e.Use(RequestID())
	e.Use(RequestLogger(deps.Logger))
	e.Use(Recover())
	e.Use(OriginGuard(deps.AllowedOrigins))
	e.Use(CORS(deps.AllowedOrigins))
}

// NewServer returns an Echo instance with middleware and API routes in place.
func NewServer(deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	SetupMiddleware(e, deps)
	RegisterRoutes(e, NewHandlers(deps))
	return e
}
