package greeting

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	got := Text("World")
	if got != "Hello World, React + Webpack + TypeScript 🚀" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestText_EmptyName(t *testing.T) {
	got := Text("")
	if got != "Hello , React + Webpack + TypeScript 🚀" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestRender_World(t *testing.T) {
	got, err := Render(context.Background(), "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<h1>Hello World, React + Webpack + TypeScript 🚀</h1>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRender_EmptyName(t *testing.T) {
	got, err := Render(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<h1>Hello , React + Webpack + TypeScript 🚀</h1>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRender_NameBetweenPrefixAndSuffix(t *testing.T) {
	names := []string{
		"Alice",
		"José",
		"名前",
		"with spaces and, commas",
		"🚀",
		strings.Repeat("x", 1000),
	}
	for _, name := range names {
		t.Run(name[:min(len(name), 16)], func(t *testing.T) {
			got, err := Render(context.Background(), name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := "<h1>Hello " + name + ", React + Webpack + TypeScript 🚀</h1>"
			if got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestRender_EscapesMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tag", "<b>", "&lt;b&gt;"},
		{"script", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"double quote", `"quoted"`, "&#34;quoted&#34;"},
		{"single quote", "O'Brien", "O&#39;Brien"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := "<h1>Hello " + tt.want + ", React + Webpack + TypeScript 🚀</h1>"
			if got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestRender_NoInjectedMarkup(t *testing.T) {
	got, err := Render(context.Background(), "<b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("expected escaped output, got %q", got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	ctx := context.Background()
	first, err := Render(ctx, "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(ctx, "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical renders, got %q and %q", first, second)
	}
}

func TestHeading_RendersToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Heading(Props{Name: "Bob"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<h1>") || !strings.HasSuffix(buf.String(), "</h1>") {
		t.Fatalf("expected a single h1 node, got %q", buf.String())
	}
	if strings.Count(buf.String(), "<h1>") != 1 {
		t.Fatalf("expected exactly one h1, got %q", buf.String())
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestHeading_WriterError(t *testing.T) {
	err := Heading(Props{Name: "Bob"}).Render(context.Background(), failingWriter{})
	if !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
}
