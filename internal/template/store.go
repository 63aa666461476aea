package template

import (
	"fmt"
	"os"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/logging"
)

// Store holds every template discovered on a search path, keyed by ID.
type Store struct {
	dirs      []string
	templates map[string]*Template
	order     []string
}

// Load scans dirs in order and reads the [Template] section of every regular
// file. The first directory to provide an ID wins. Directories that do not
// exist are skipped. Any file with missing metadata aborts the whole load.
func Load(dirs []string) (*Store, error) {
	s := &Store{
		dirs:      append([]string(nil), dirs...),
		templates: make(map[string]*Template),
	}

	for _, dir := range dirs {
		if err := s.scan(dir); err != nil {
			return nil, err
		}
	}

	logging.Debug("loaded templates", "count", len(s.order), "dirs", dirs)
	return s, nil
}

func (s *Store) scan(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("template directory not found, skipping", "dir", dir)
			return nil
		}
		return errors.ConfigError(fmt.Sprintf("failed to read template directory %s", dir), err)
	}

	for _, entry := range entries {
		id := entry.Name()
		if entry.IsDir() || strings.HasPrefix(id, ".") {
			continue
		}
		if _, seen := s.templates[id]; seen {
			logging.Debug("template shadowed by earlier directory", "id", id, "dir", dir)
			continue
		}

		// Symlinks are resolved as if dir were the filesystem root, so a
		// template file can never point outside its search directory.
		path, err := securejoin.SecureJoin(dir, id)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("invalid template path %s", id), err)
		}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			logging.Debug("skipping non-regular template entry", "path", path)
			continue
		}

		t, err := parseMetadata(id, path)
		if err != nil {
			return err
		}
		s.templates[id] = t
		s.order = append(s.order, id)
	}

	return nil
}

// Get returns the template with the given ID.
func (s *Store) Get(id string) (*Template, bool) {
	t, ok := s.templates[id]
	return t, ok
}

// List returns all templates in discovery order.
func (s *Store) List() []*Template {
	out := make([]*Template, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.templates[id])
	}
	return out
}

// IDs returns all template IDs in discovery order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of templates.
func (s *Store) Len() int {
	return len(s.order)
}

// Dirs returns the search path the store was loaded from.
func (s *Store) Dirs() []string {
	return append([]string(nil), s.dirs...)
}
