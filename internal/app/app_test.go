package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/template"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}

	// Should have default paths
	if app.Paths == nil {
		t.Error("Paths should not be nil")
	}
	if app.Normalizer == nil {
		t.Error("Normalizer should not be nil")
	}
}

func TestNew_WithPaths(t *testing.T) {
	customPaths := &config.Paths{
		TemplateDirs: []string{"/custom/templates"},
		DefaultsFile: "/custom/config.toml",
	}

	app := New(WithPaths(customPaths))

	if app.Paths != customPaths {
		t.Error("WithPaths did not set custom paths")
	}
}

func TestNew_WithNormalizer(t *testing.T) {
	n := &template.Normalizer{}

	app := New(WithNormalizer(n))

	if app.Normalizer != n {
		t.Error("WithNormalizer did not set normalizer")
	}
}

func TestLoadDefaults_Injected(t *testing.T) {
	d := &config.Defaults{Environments: map[string]string{"ROOT": "/r"}}
	app := New(WithDefaults(d), WithPaths(&config.Paths{DefaultsFile: "/nonexistent/config.toml"}))

	got, err := app.LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}
	if got != d {
		t.Error("LoadDefaults should return injected defaults")
	}
}

func TestLoadDefaults_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(path, []byte("[config]\noutput = \"x.wsb\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write defaults: %v", err)
	}

	app := New(WithPaths(&config.Paths{DefaultsFile: path}))

	got, err := app.LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}
	if got.General.Output != "x.wsb" {
		t.Errorf("Output = %q, want %q", got.General.Output, "x.wsb")
	}

	again, _ := app.LoadDefaults()
	if again != got {
		t.Error("LoadDefaults should cache the parsed file")
	}
}

func TestOpenStore_ExtraDirsFirst(t *testing.T) {
	primary := t.TempDir()
	extra := t.TempDir()

	write := func(dir, name string) {
		content := "[Template]\nname = " + name + "\ndescription = d\n"
		if err := os.WriteFile(filepath.Join(dir, "t.ini"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write template: %v", err)
		}
	}
	write(primary, "primary")
	write(extra, "extra")

	app := New(WithPaths(&config.Paths{TemplateDirs: []string{primary}}))

	store, err := app.OpenStore(extra)
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	tmpl, ok := store.Get("t.ini")
	if !ok {
		t.Fatal("template t.ini not found")
	}
	if tmpl.Name != "extra" {
		t.Errorf("Name = %q, want %q", tmpl.Name, "extra")
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer SetDefault(original)

	custom := New(WithPaths(&config.Paths{DefaultsFile: "/custom"}))
	SetDefault(custom)

	if Default != custom {
		t.Error("SetDefault did not set default app")
	}

	ResetDefault()
	if Default == custom {
		t.Error("ResetDefault did not replace default app")
	}
}
