// Package app provides the application context for wsbgen.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/logging"
	"github.com/firefly-engineering/wsbgen/internal/template"
)

// App holds the application dependencies
type App struct {
	// Paths holds the template search path and defaults file location
	Paths *config.Paths

	// Defaults is the loaded defaults file. It is read lazily by
	// LoadDefaults when not injected.
	Defaults *config.Defaults

	// Normalizer turns template mappings into host paths
	Normalizer *template.Normalizer
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithDefaults sets pre-loaded defaults
func WithDefaults(d *config.Defaults) Option {
	return func(a *App) {
		a.Defaults = d
	}
}

// WithNormalizer sets a custom normalizer
func WithNormalizer(n *template.Normalizer) Option {
	return func(a *App) {
		a.Normalizer = n
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Paths:      config.DefaultPaths(),
		Normalizer: template.NewNormalizer(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// LoadDefaults returns the defaults file contents, reading it on first use.
func (a *App) LoadDefaults() (*config.Defaults, error) {
	if a.Defaults != nil {
		return a.Defaults, nil
	}
	d, err := config.LoadDefaults(a.Paths.DefaultsFile)
	if err != nil {
		return nil, err
	}
	a.Defaults = d
	return d, nil
}

// OpenStore loads every template on the search path, with extraDirs searched
// first.
func (a *App) OpenStore(extraDirs ...string) (*template.Store, error) {
	dirs := a.Paths.WithTemplateDirs(extraDirs...).TemplateDirs
	logging.Debug("opening template store", "dirs", dirs)
	return template.Load(dirs)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
