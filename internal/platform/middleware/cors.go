package middleware

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

// CORS allows any origin to call the greeting API. Credentials are bearer
// tokens, never cookies.
func CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type", HeaderXRequestID, "traceparent"},
		ExposeHeaders: []string{"Location", HeaderXRequestID},
		MaxAge:        600,
	})
}
