package health

import (
	"net/http"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/greeting-playground/internal/platform/logging"
	"github.com/janisto/greeting-playground/internal/platform/respond"
	"github.com/janisto/greeting-playground/internal/view/greeting"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler reports healthy once a probe greeting renders; otherwise 503.
func Handler(c *echo.Context) error {
	ctx := c.Request().Context()
	if _, err := greeting.Render(ctx, "health"); err != nil {
		applog.LogError(ctx, "health probe render failed", err)
		return respond.Error503("greeting view unavailable")
	}
	return c.JSON(http.StatusOK, Response{Status: "healthy"})
}
