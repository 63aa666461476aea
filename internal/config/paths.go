package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName names the per-user configuration and data directories.
	AppName = "wsbgen"

	// LocalTemplatesDir is searched first when it exists in the working
	// directory.
	LocalTemplatesDir = "templates"

	// DefaultsFileName is the defaults file inside the config directory.
	DefaultsFileName = "config.toml"
)

// Paths holds the configured paths
type Paths struct {
	// TemplateDirs is the ordered template search path. Earlier
	// directories shadow later ones.
	TemplateDirs []string

	// DefaultsFile is the TOML file holding pre-answered prompts.
	DefaultsFile string
}

// DefaultPaths returns the default path configuration: ./templates when it
// exists, then $XDG_CONFIG_HOME/wsbgen/templates, then each
// $XDG_DATA_DIRS/wsbgen/templates.
func DefaultPaths() *Paths {
	var dirs []string
	if info, err := os.Stat(LocalTemplatesDir); err == nil && info.IsDir() {
		if abs, err := filepath.Abs(LocalTemplatesDir); err == nil {
			dirs = append(dirs, abs)
		}
	}

	dirs = append(dirs, filepath.Join(xdg.ConfigHome, AppName, LocalTemplatesDir))
	for _, dataDir := range xdg.DataDirs {
		dirs = append(dirs, filepath.Join(dataDir, AppName, LocalTemplatesDir))
	}

	return &Paths{
		TemplateDirs: dirs,
		DefaultsFile: filepath.Join(xdg.ConfigHome, AppName, DefaultsFileName),
	}
}

// WithTemplateDirs returns a copy of p with extra directories searched before
// the configured ones.
func (p *Paths) WithTemplateDirs(extra ...string) *Paths {
	dirs := make([]string, 0, len(extra)+len(p.TemplateDirs))
	dirs = append(dirs, extra...)
	dirs = append(dirs, p.TemplateDirs...)
	return &Paths{
		TemplateDirs: dirs,
		DefaultsFile: p.DefaultsFile,
	}
}
