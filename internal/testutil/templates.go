package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TB is the subset of testing.TB the helpers need. It is satisfied by both
// *testing.T and *rapid.T.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Mapping is a folder mapping for TemplateSource.
type Mapping struct {
	Host     string
	Sandbox  string
	ReadOnly bool
}

// TemplateSpec describes a template file to generate.
type TemplateSpec struct {
	Name        string
	Description string
	Author      string
	Requires    []string
	Mappings    []Mapping
	Commands    []string
}

// Source renders the spec in template INI syntax.
func (s TemplateSpec) Source() string {
	var b strings.Builder
	b.WriteString("[Template]\n")
	fmt.Fprintf(&b, "name = %s\n", s.Name)
	fmt.Fprintf(&b, "description = %s\n", s.Description)
	if s.Author != "" {
		fmt.Fprintf(&b, "author = %s\n", s.Author)
	}
	if len(s.Requires) > 0 {
		fmt.Fprintf(&b, "requires = %s\n", strings.Join(s.Requires, ", "))
	}
	fmt.Fprintf(&b, "Mappings = %d\n", len(s.Mappings))
	fmt.Fprintf(&b, "Commands = %d\n", len(s.Commands))

	for i, m := range s.Mappings {
		readOnly := 0
		if m.ReadOnly {
			readOnly = 1
		}
		fmt.Fprintf(&b, "\n[Mapping%d]\nHostFolder = %s\nSandboxFolder = %s\nReadOnly = %d\n", i+1, m.Host, m.Sandbox, readOnly)
	}
	for i, c := range s.Commands {
		fmt.Fprintf(&b, "\n[Command%d]\nCommand = %s\n", i+1, c)
	}
	return b.String()
}

// WriteTemplate writes content as template id in dir and returns its path.
func WriteTemplate(t TB, dir, id, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create template directory: %v", err)
	}
	path := filepath.Join(dir, id)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write template %s: %v", id, err)
	}
	return path
}

// WriteSpec writes spec as template id in dir and returns its path.
func WriteSpec(t TB, dir, id string, spec TemplateSpec) string {
	t.Helper()

	if spec.Name == "" {
		spec.Name = id
	}
	if spec.Description == "" {
		spec.Description = "Test template " + id
	}
	return WriteTemplate(t, dir, id, spec.Source())
}
