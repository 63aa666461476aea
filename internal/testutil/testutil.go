// Package testutil provides test utilities for integration tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/wsbgen/internal/app"
	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/template"
)

// TestEnv holds the test environment
type TestEnv struct {
	T            *testing.T
	TmpDir       string
	TemplatesDir string
	Paths        *config.Paths
	Env          map[string]string
	App          *app.App
	cleanup      func()
}

// NewTestEnv creates a test environment with an empty template directory, a
// defaults file location and an app whose environment lookups only see
// Env. The default app is restored when the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	templatesDir := filepath.Join(tmpDir, "templates")
	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", templatesDir, err)
	}

	paths := &config.Paths{
		TemplateDirs: []string{templatesDir},
		DefaultsFile: filepath.Join(tmpDir, "config.toml"),
	}

	env := &TestEnv{
		T:            t,
		TmpDir:       tmpDir,
		TemplatesDir: templatesDir,
		Paths:        paths,
		Env:          map[string]string{},
	}

	normalizer := &template.Normalizer{
		LookupEnv: func(name string) (string, bool) {
			v, ok := env.Env[name]
			return v, ok
		},
		Abs: filepath.Abs,
	}

	env.App = app.New(
		app.WithPaths(paths),
		app.WithNormalizer(normalizer),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(env.App)
	env.cleanup = func() {
		app.SetDefault(originalDefault)
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// AddTemplate writes a template into the primary template directory.
func (e *TestEnv) AddTemplate(id, content string) string {
	e.T.Helper()
	return WriteTemplate(e.T, e.TemplatesDir, id, content)
}

// AddSpec writes a generated template into the primary template directory.
func (e *TestEnv) AddSpec(id string, spec TemplateSpec) string {
	e.T.Helper()
	return WriteSpec(e.T, e.TemplatesDir, id, spec)
}

// AddFixtureSet copies an embedded fixture set into the primary template
// directory.
func (e *TestEnv) AddFixtureSet(set string) {
	e.T.Helper()
	if err := CopyFixtureSet(set, e.TemplatesDir); err != nil {
		e.T.Fatalf("Failed to copy fixture set %s: %v", set, err)
	}
}

// WriteDefaults writes the defaults file.
func (e *TestEnv) WriteDefaults(content string) {
	e.T.Helper()
	if err := os.WriteFile(e.Paths.DefaultsFile, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write defaults: %v", err)
	}
	e.App.Defaults = nil
}

// HostDir creates a directory under the test root and returns its path.
func (e *TestEnv) HostDir(name string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, "host", name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create host directory: %v", err)
	}
	return path
}

// OutputPath returns a path under the test root for a generated file.
func (e *TestEnv) OutputPath(name string) string {
	return filepath.Join(e.TmpDir, "out", name)
}
