package app

import (
	"context"
	"fmt"
	"io"

	"github.com/atomicstack/curselect/internal/formfile"
	"github.com/atomicstack/curselect/internal/layout"
	"github.com/atomicstack/curselect/pkg/form"
)

// Config describes user-provided application options.
type Config struct {
	File       string
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	LeftMargin int
	LabelOnTop *bool

	// Input and Output replace the terminal when set.
	Input  io.Reader
	Output io.Writer
}

// Build loads the definition named by cfg and returns the form it describes,
// with command line overrides applied over the file's settings.
func Build(cfg Config) (*form.Form[string, string], error) {
	def, err := formfile.Load(cfg.File)
	if err != nil {
		return nil, err
	}
	return FromDefinition(def, cfg)
}

// FromDefinition builds a form from an already parsed definition.
func FromDefinition(def *formfile.Definition, cfg Config) (*form.Form[string, string], error) {
	formCfg := form.Config[string]{
		Title:      def.Title,
		LeftMargin: layout.Or(def.LeftMargin, 0),
		LabelOnTop: layout.Or(def.LabelOnTop, false),
	}
	if cfg.Title != "" {
		formCfg.Title = cfg.Title
	}
	if cfg.LeftMargin > 0 {
		formCfg.LeftMargin = cfg.LeftMargin
	}
	formCfg.LabelOnTop = layout.Or(cfg.LabelOnTop, formCfg.LabelOnTop)
	f := form.New[string, string](formCfg)
	if err := def.Apply(f); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	return f, nil
}

// Run bootstraps the form and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) (form.Result[string, string], error) {
	f, err := Build(cfg)
	if err != nil {
		return form.Result[string, string]{}, err
	}
	opts := []form.RunOption{
		form.WithSize(cfg.Width, cfg.Height),
		form.WithFooter(cfg.ShowFooter),
	}
	if cfg.Input != nil {
		opts = append(opts, form.WithInput(cfg.Input), form.WithAltScreen(false))
	}
	if cfg.Output != nil {
		opts = append(opts, form.WithOutput(cfg.Output))
	}
	return f.Run(ctx, opts...)
}
