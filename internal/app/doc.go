// Package app provides the application context for wsbgen.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths      *config.Paths        // Template search path, defaults file
//	    Defaults   *config.Defaults     // Pre-answered prompts
//	    Normalizer *template.Normalizer // Host path resolution
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(testPaths),
//	    app.WithDefaults(&config.Defaults{}),
//	)
//
// # Available Options
//
//	WithPaths(paths)          // Custom path configuration
//	WithDefaults(defaults)    // Skip reading the defaults file
//	WithNormalizer(n)         // Custom environment lookup
package app
