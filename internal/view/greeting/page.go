package greeting

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DefaultTitle is used when PageProps.Title is empty.
const DefaultTitle = "Greeting"

// PageProps configures the Page component.
type PageProps struct {
	Title string
	Name  string
}

// Page returns a complete HTML document with the heading mounted in #root.
func Page(p PageProps) templ.Component {
	title := p.Title
	if title == "" {
		title = DefaultTitle
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := "<!DOCTYPE html>\n" +
			`<html lang="en">` +
			"<head>" +
			`<meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			"<title>" + templ.EscapeString(title) + "</title>" +
			"</head>" +
			"<body>" +
			`<div id="root">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := Heading(Props{Name: p.Name}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div></body></html>\n")
		return err
	})
}

// RenderPage serializes the full page into a string.
func RenderPage(ctx context.Context, p PageProps) (string, error) {
	return renderString(ctx, Page(p))
}
