package respond

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v5"
)

// HTML renders a templ component and writes it as text/html.
// The component is buffered first so a render error still yields a Problem Details response.
func HTML(c *echo.Context, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}
