package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/curselect/internal/app"
	"github.com/atomicstack/curselect/internal/output"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Output  Output
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Output struct {
	Format string
	Copy   bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envFile       = "CURSELECT_FILE"
	envTitle      = "CURSELECT_TITLE"
	envWidth      = "CURSELECT_WIDTH"
	envHeight     = "CURSELECT_HEIGHT"
	envShowFooter = "CURSELECT_FOOTER"
	envLeftMargin = "CURSELECT_LEFT_MARGIN"
	envLabelOnTop = "CURSELECT_LABEL_ON_TOP"
	envFormat     = "CURSELECT_FORMAT"
	envCopy       = "CURSELECT_COPY"
	envTrace      = "CURSELECT_TRACE"
	envLogFile    = "CURSELECT_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("curselect", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, ""), "path to the form definition (or pass it as the first argument)")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "header text shown above the form (overrides the definition)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	leftMargin := fs.Int("left-margin", envOrInt(env, envLeftMargin, 0), "column options start at (0 keeps the definition or default)")
	labelOnTop := fs.Bool("label-on-top", envOrBool(env, envLabelOnTop, false), "stack labels above their options by default")
	format := fs.String("format", envOrDefault(env, envFormat, output.FormatJSON), "result format: json, yaml or text")
	copyResult := fs.Bool("copy", envOrBool(env, envCopy, false), "also copy the result to the clipboard")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *leftMargin < 0 {
		return Config{}, fmt.Errorf("left-margin must be >= 0 (got %d)", *leftMargin)
	}

	rest := fs.Args()
	if *file == "" && len(rest) > 0 {
		*file = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	var labelOverride *bool
	if isSet(fs, "label-on-top") || hasEnv(env, envLabelOnTop) {
		labelOverride = labelOnTop
	}

	cfg := Config{
		App: app.Config{
			File:       *file,
			Title:      *title,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			LeftMargin: *leftMargin,
			LabelOnTop: labelOverride,
		},
		Output: Output{
			Format: strings.ToLower(strings.TrimSpace(*format)),
			Copy:   *copyResult,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"file":       *file,
			"title":      *title,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"leftMargin": strconv.Itoa(*leftMargin),
			"labelOnTop": strconv.FormatBool(*labelOnTop),
			"format":     *format,
			"copy":       strconv.FormatBool(*copyResult),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func hasEnv(env map[string]string, key string) bool {
	v, ok := env[key]
	return ok && strings.TrimSpace(v) != ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.File) == "" {
		return errors.New("a form definition file is required")
	}
	if !output.Valid(cfg.Output.Format) {
		return fmt.Errorf("unknown format %q (want one of %s)", cfg.Output.Format, strings.Join(output.Formats(), ", "))
	}
	return nil
}
