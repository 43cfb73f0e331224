package page

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/janisto/greeting-playground/internal/platform/respond"
	"github.com/janisto/greeting-playground/internal/view/greeting"
)

// Defaults are the page props used when the request does not override them.
type Defaults struct {
	Name  string
	Title string
}

// Register wires the HTML page routes.
// - GET / renders the greeting page. ?name= overrides the default name, even when empty.
func Register(e *echo.Echo, d Defaults) {
	e.GET("/", handler(d))
}

func handler(d Defaults) echo.HandlerFunc {
	return func(c *echo.Context) error {
		name := d.Name
		if values := c.QueryParams(); values.Has("name") {
			name = values.Get("name")
		}
		return respond.HTML(c, http.StatusOK, greeting.Page(greeting.PageProps{
			Title: d.Title,
			Name:  name,
		}))
	}
}
