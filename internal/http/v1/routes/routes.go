package routes

import (
	"github.com/labstack/echo/v5"

	"github.com/janisto/greeting-playground/internal/http/v1/greetee"
	"github.com/janisto/greeting-playground/internal/http/v1/hello"
	"github.com/janisto/greeting-playground/internal/platform/auth"
	greeteesvc "github.com/janisto/greeting-playground/internal/service/greetee"
)

// Register wires all v1 routes into the provided group.
func Register(v1 *echo.Group, verifier auth.Verifier, svc greeteesvc.Service) {
	hello.Register(v1)

	protected := v1.Group("", auth.Middleware(verifier))
	greetee.Register(protected, svc)
}
