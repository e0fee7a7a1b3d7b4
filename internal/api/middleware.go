// middleware.go - Request id, logging, recovery and cross-origin policy
package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID tags every request and response with an X-Request-ID.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger writes one structured line per request. Health checks are skipped.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/api/health"
		},
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.InfoContext(c.Request().Context(), "Request is handled",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latencyMs", v.Latency.Milliseconds(),
				"requestId", v.RequestID)
			return nil
		},
	})
}

// Recover turns handler panics into errors for the central error handler.
func Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: true,
	})
}

// OriginGuard rejects browser requests from origins outside the allow-list
// before they reach any handler. Requests without an Origin header and
// same-origin requests pass.
func OriginGuard(allowed []string) echo.MiddlewareFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" {
				return next(c)
			}
			if _, ok := allowedSet[origin]; ok || isSameOrigin(origin, c.Request()) {
				return next(c)
			}
			return NewForbiddenError(MsgOriginNotAllowed)
		}
	}
}

func isSameOrigin(origin string, r *http.Request) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host != "" && u.Host == r.Host
}

// CORS answers preflights and sets credentialed CORS headers for allowed origins.
func CORS(allowed []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowed,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	})
}
