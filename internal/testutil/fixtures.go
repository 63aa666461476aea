package testutil

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed fixtures
var fixturesFS embed.FS

// LoadFixture loads a fixture file by its path under fixtures/, for example
// "basic/dev.ini".
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile(path.Join("fixtures", name))
}

// FixtureSet lists the template IDs of a fixture set in directory order.
func FixtureSet(set string) ([]string, error) {
	entries, err := fs.ReadDir(fixturesFS, path.Join("fixtures", set))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

// CopyFixtureSet writes every template of a fixture set into dir.
func CopyFixtureSet(set, dir string) error {
	ids, err := FixtureSet(set)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, id := range ids {
		data, err := LoadFixture(path.Join(set, id))
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, id), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
