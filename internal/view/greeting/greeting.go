// Package greeting provides the templ components that render the greeting heading.
//
// Components take a Props struct and escape every interpolated value, so a
// caller-supplied name can never inject markup into the page.
package greeting

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	prefix = "Hello "
	suffix = ", React + Webpack + TypeScript 🚀"
)

// Props configures the Heading component.
type Props struct {
	Name string
}

// Text returns the heading's text content with name interpolated verbatim.
func Text(name string) string {
	return prefix + name + suffix
}

// Heading returns an h1 component whose text is Text(p.Name).
// The name is HTML-escaped; the fixed prefix and suffix are written as is.
func Heading(p Props) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>"+prefix+templ.EscapeString(p.Name)+suffix+"</h1>")
		return err
	})
}

// Render serializes the heading for name into a string.
func Render(ctx context.Context, name string) (string, error) {
	return renderString(ctx, Heading(Props{Name: name}))
}

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
