package greetee

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v5"

	"github.com/janisto/greeting-playground/internal/http/v1/hello"
	"github.com/janisto/greeting-playground/internal/platform/auth"
	applog "github.com/janisto/greeting-playground/internal/platform/logging"
	"github.com/janisto/greeting-playground/internal/platform/respond"
	"github.com/janisto/greeting-playground/internal/platform/timeutil"
	greeteesvc "github.com/janisto/greeting-playground/internal/service/greetee"
)

const resourceType = "greetee"

// Register wires greetee routes into the provided group.
// The group is expected to have auth middleware applied.
func Register(g *echo.Group, svc greeteesvc.Service) {
	g.POST("/greetee", handleCreate(svc))
	g.GET("/greetee", handleGet(svc))
	g.PATCH("/greetee", handleUpdate(svc))
	g.DELETE("/greetee", handleDelete(svc))
	g.GET("/greetee/greeting", handleGreeting(svc))
}

// handleCreate godoc
//
//	@Summary		Store greetee name
//	@Description	Stores the name the authenticated user is greeted by
//	@Tags			greetee
//	@Accept			json
//	@Produce		json,application/cbor
//	@Param			body	body		CreateInput	true	"Greetee creation request body"
//	@Success		201		{object}	Greetee
//	@Failure		400		{object}	respond.ProblemDetails
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		409		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Header			201		{string}	Location	"URI of the stored greetee"
//	@Security		BearerAuth
//	@Router			/greetee [post]
func handleCreate(svc greeteesvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input CreateInput
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		g, err := svc.Create(ctx, user.UID, greeteesvc.CreateParams{Name: *input.Name})
		if err != nil {
			audit(ctx, "create", user.UID, "failure", nil)
			return mapServiceError(ctx, err)
		}
		audit(ctx, "create", user.UID, "success", map[string]any{"nameLength": utf8.RuneCountInString(g.Name)})

		c.Response().Header().Set("Location", "/v1/greetee")
		return respond.Negotiate(c, http.StatusCreated, toHTTPGreetee(g))
	}
}

// handleGet godoc
//
//	@Summary		Get greetee name
//	@Description	Returns the authenticated user's stored name
//	@Tags			greetee
//	@Produce		json,application/cbor
//	@Success		200	{object}	Greetee
//	@Failure		401	{object}	respond.ProblemDetails
//	@Failure		404	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/greetee [get]
func handleGet(svc greeteesvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		g, err := svc.Get(ctx, user.UID)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		return respond.Negotiate(c, http.StatusOK, toHTTPGreetee(g))
	}
}

// handleUpdate godoc
//
//	@Summary		Update greetee name
//	@Description	Partially updates the authenticated user's stored name
//	@Tags			greetee
//	@Accept			json
//	@Produce		json,application/cbor
//	@Param			body	body		UpdateInput	true	"Greetee update request body"
//	@Success		200		{object}	Greetee
//	@Failure		400		{object}	respond.ProblemDetails
//	@Failure		401		{object}	respond.ProblemDetails
//	@Failure		404		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/greetee [patch]
func handleUpdate(svc greeteesvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input UpdateInput
		if err := c.Bind(&input); err != nil {
			return err
		}
		if err := c.Validate(&input); err != nil {
			return err
		}

		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		g, err := svc.Update(ctx, user.UID, greeteesvc.UpdateParams{Name: input.Name})
		if err != nil {
			audit(ctx, "update", user.UID, "failure", nil)
			return mapServiceError(ctx, err)
		}
		audit(ctx, "update", user.UID, "success", map[string]any{"nameChanged": input.Name != nil})

		return respond.Negotiate(c, http.StatusOK, toHTTPGreetee(g))
	}
}

// handleDelete godoc
//
//	@Summary		Delete greetee name
//	@Description	Deletes the authenticated user's stored name
//	@Tags			greetee
//	@Success		204
//	@Failure		401	{object}	respond.ProblemDetails
//	@Failure		404	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/greetee [delete]
func handleDelete(svc greeteesvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		if err := svc.Delete(ctx, user.UID); err != nil {
			audit(ctx, "delete", user.UID, "failure", nil)
			return mapServiceError(ctx, err)
		}
		audit(ctx, "delete", user.UID, "success", nil)

		return c.NoContent(http.StatusNoContent)
	}
}

// handleGreeting godoc
//
//	@Summary		Greet the stored name
//	@Description	Renders the greeting for the authenticated user's stored name
//	@Tags			greetee
//	@Produce		json,application/cbor
//	@Success		200	{object}	hello.Data
//	@Failure		401	{object}	respond.ProblemDetails
//	@Failure		404	{object}	respond.ProblemDetails
//	@Failure		500	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/greetee/greeting [get]
func handleGreeting(svc greeteesvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		user, err := auth.UserFromEchoContext(c)
		if err != nil {
			return respond.Error401("unauthorized")
		}

		ctx := c.Request().Context()
		g, err := svc.Get(ctx, user.UID)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		data, err := hello.NewData(ctx, g.Name)
		if err != nil {
			return err
		}
		return respond.Negotiate(c, http.StatusOK, data)
	}
}

func audit(ctx context.Context, action, userID, result string, details map[string]any) {
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action:       resourceType + "." + action,
		UserID:       userID,
		ResourceType: resourceType,
		ResourceID:   userID,
		Result:       result,
		Details:      details,
	})
}

func mapServiceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, greeteesvc.ErrNotFound):
		return respond.Error404("greetee not found")
	case errors.Is(err, greeteesvc.ErrAlreadyExists):
		return respond.Error409("greetee already exists")
	default:
		applog.LogError(ctx, "unexpected service error", err)
		return respond.Error500("internal error")
	}
}

func toHTTPGreetee(g *greeteesvc.Greetee) Greetee {
	return Greetee{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: timeutil.NewTime(g.CreatedAt),
		UpdatedAt: timeutil.NewTime(g.UpdatedAt),
	}
}
