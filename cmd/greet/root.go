package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/a-h/templ"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/janisto/greeting-playground/internal/view/greeting"
)

type options struct {
	name  string
	page  bool
	title string
	out   string
}

// propsFile is the TOML layout accepted by --props. Absent keys leave the
// flag values in place.
type propsFile struct {
	Name  *string `toml:"name"`
	Title *string `toml:"title"`
}

var errNoName = errors.New("name is required: pass --name or set name in the props file")

func newRootCmd() *cobra.Command {
	var (
		opts      options
		propsPath string
	)

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Render the greeting heading as HTML",
		Long: "Render the greeting heading for --name. With --page, render a complete " +
			"HTML document that mounts the heading in #root.\n\n" +
			"--props reads name and title from a TOML file; explicit flags win.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if propsPath != "" {
				if err := applyProps(cmd, propsPath, &opts); err != nil {
					return err
				}
			}
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.name, "name", "n", "", "name to greet (may be empty)")
	flags.BoolVar(&opts.page, "page", false, "render a full HTML page instead of the h1 fragment")
	flags.StringVar(&opts.title, "title", greeting.DefaultTitle, "page title, used with --page")
	flags.StringVarP(&opts.out, "out", "o", "", "write to this file instead of stdout")
	flags.StringVar(&propsPath, "props", "", "TOML file with name and title")
	cmd.MarkFlagsOneRequired("name", "props")

	return cmd
}

// applyProps fills options from the TOML file at path, except for flags the
// user set explicitly.
func applyProps(cmd *cobra.Command, path string, opts *options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open props: %w", err)
	}
	defer func() { _ = f.Close() }()

	var p propsFile
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("decode props %s: %w", path, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("name") {
		if p.Name == nil {
			return errNoName
		}
		opts.name = *p.Name
	}
	if p.Title != nil && !flags.Changed("title") {
		opts.title = *p.Title
	}
	return nil
}

// run renders the selected component to stdout or to opts.out. The fragment
// ends with a newline in both cases; the page already does.
func run(ctx context.Context, stdout io.Writer, opts options) error {
	var component templ.Component
	if opts.page {
		component = greeting.Page(greeting.PageProps{Title: opts.title, Name: opts.name})
	} else {
		component = greeting.Heading(greeting.Props{Name: opts.name})
	}

	if opts.out == "" {
		return render(ctx, stdout, component, !opts.page)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := render(ctx, f, component, !opts.page); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.out, err)
	}
	return nil
}

func render(ctx context.Context, w io.Writer, component templ.Component, newline bool) error {
	if err := component.Render(ctx, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if newline {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}
