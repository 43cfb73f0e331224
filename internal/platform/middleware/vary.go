package middleware

import "github.com/labstack/echo/v5"

// Vary returns Echo middleware that appends headers to Vary on every response.
func Vary(headers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			for _, v := range headers {
				h.Add("Vary", v)
			}
			return next(c)
		}
	}
}
