package respond

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// problemPage renders a minimal HTML error page. Every field is escaped.
func problemPage(p ProblemDetails) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		title := templ.EscapeString(strconv.Itoa(p.Status) + " " + p.Title)
		html := "<!DOCTYPE html>\n" +
			`<html lang="en"><head><meta charset="utf-8"><title>` + title + "</title></head>" +
			"<body><h1>" + title + "</h1>"
		if p.Detail != "" {
			html += "<p>" + templ.EscapeString(p.Detail) + "</p>"
		}
		if len(p.Errors) > 0 {
			html += "<ul>"
			for _, e := range p.Errors {
				html += "<li>" + templ.EscapeString(e.Message) + "</li>"
			}
			html += "</ul>"
		}
		html += "</body></html>\n"
		_, err := io.WriteString(w, html)
		return err
	})
}
