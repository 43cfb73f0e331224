package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/greeting-playground/internal/platform/logging"
	"github.com/janisto/greeting-playground/internal/platform/respond"
)

const userKey = "user"

type userContextKey struct{}

// Middleware returns Echo middleware that requires a valid Firebase ID token
// in the Authorization header. On success the user is stored in both the Echo
// context and the request context, and the request logger gains a userId.
func Middleware(verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			ctx := c.Request().Context()

			token, err := ExtractBearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				applog.LogWarn(ctx, "auth rejected", slog.String("reason", "no_token"))
				return challenge(c, "missing or invalid authorization header")
			}

			user, err := verifier.Verify(ctx, token)
			if err != nil {
				applog.LogWarn(ctx, "auth rejected", slog.String("reason", reason(err)))
				if errors.Is(err, ErrCertificateFetch) {
					c.Response().Header().Set("Retry-After", "30")
					return respond.Error503("authentication service temporarily unavailable")
				}
				return challenge(c, "invalid or expired token")
			}

			c.Set(userKey, user)
			ctx = context.WithValue(ctx, userContextKey{}, user)
			ctx = applog.WithAttrs(ctx, slog.String("userId", user.UID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func challenge(c *echo.Context, detail string) error {
	c.Response().Header().Set("WWW-Authenticate", `Bearer realm="greeting"`)
	return respond.Error401(detail)
}

// reason is a log-safe category for a verification failure.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrTokenRevoked):
		return "token_revoked"
	case errors.Is(err, ErrUserDisabled):
		return "user_disabled"
	case errors.Is(err, ErrCertificateFetch):
		return "certificate_fetch_failed"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	}
	return "unknown"
}

// UserFromEchoContext returns the user set by Middleware.
func UserFromEchoContext(c *echo.Context) (*FirebaseUser, error) {
	return echo.ContextGet[*FirebaseUser](c, userKey)
}

// UserFromContext returns the user set by Middleware, or nil.
func UserFromContext(ctx context.Context) *FirebaseUser {
	user, _ := ctx.Value(userContextKey{}).(*FirebaseUser)
	return user
}
