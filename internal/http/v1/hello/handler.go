package hello

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/greeting-playground/internal/platform/logging"
	"github.com/janisto/greeting-playground/internal/platform/respond"
	"github.com/janisto/greeting-playground/internal/view/greeting"
)

// Register wires hello routes into the provided group.
func Register(g *echo.Group) {
	g.GET("/hello", getHandler)
	g.POST("/hello", createHandler)
	g.GET("/hello/markup", markupHandler)
}

// NewData renders the greeting for name into a response payload.
func NewData(ctx context.Context, name string) (Data, error) {
	markup, err := greeting.Render(ctx, name)
	if err != nil {
		return Data{}, err
	}
	return Data{Message: greeting.Text(name), Markup: markup}, nil
}

// getHandler godoc
//
//	@Summary		Greeting endpoint
//	@Description	Returns the greeting text and its escaped h1 markup for the given name
//	@Tags			hello
//	@Produce		json,application/cbor
//	@Param			name	query		string	true	"Name to greet; may be empty"
//	@Success		200		{object}	Data
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/hello [get]
func getHandler(c *echo.Context) error {
	name, err := bindName(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	applog.LogInfo(ctx, "hello get", slog.String("path", "/hello"))

	data, err := NewData(ctx, name)
	if err != nil {
		return err
	}
	return respond.Negotiate(c, http.StatusOK, data)
}

// createHandler godoc
//
//	@Summary		Create greeting
//	@Description	Creates a personalized greeting
//	@Tags			hello
//	@Accept			json
//	@Produce		json,application/cbor
//	@Param			body	body		CreateInput	true	"Greeting request body"
//	@Success		201		{object}	Data
//	@Failure		400		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/hello [post]
func createHandler(c *echo.Context) error {
	var input CreateInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	applog.LogInfo(ctx, "hello post",
		slog.String("path", "/hello"),
		slog.String("name", *input.Name))

	data, err := NewData(ctx, *input.Name)
	if err != nil {
		return err
	}
	return respond.Negotiate(c, http.StatusCreated, data)
}

// markupHandler godoc
//
//	@Summary		Greeting markup
//	@Description	Returns only the h1 fragment, for hosts that embed the heading
//	@Tags			hello
//	@Produce		html
//	@Param			name	query		string	true	"Name to greet; may be empty"
//	@Success		200		{string}	string
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/hello/markup [get]
func markupHandler(c *echo.Context) error {
	name, err := bindName(c)
	if err != nil {
		return err
	}
	return respond.HTML(c, http.StatusOK, greeting.Heading(greeting.Props{Name: name}))
}

// bindName reads the name query parameter, distinguishing absent from empty.
func bindName(c *echo.Context) (string, error) {
	var input GetInput
	if values := c.QueryParams(); values.Has("name") {
		name := values.Get("name")
		input.Name = &name
	}
	if err := c.Validate(&input); err != nil {
		return "", err
	}
	return *input.Name, nil
}
