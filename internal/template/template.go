package template

import (
	"sort"
)

// FolderMapping is a host folder exposed inside the sandbox. HostFolder may
// still contain <NAME> placeholders.
type FolderMapping struct {
	HostFolder    string
	SandboxFolder string
	ReadOnly      bool
}

// Declaration is the full body of a template: its mappings and logon
// commands in declared order.
type Declaration struct {
	Mappings []FolderMapping
	Commands []string
}

// Template is one template file's metadata. The body is parsed on first use
// and kept for the life of the store.
type Template struct {
	// ID is the file's base name including extension.
	ID          string
	Name        string
	Description string
	Author      string
	Requires    []string
	Path        string

	decl        *Declaration
	requiredEnv map[string]struct{}
}

// Parsed reports whether the body has been read yet.
func (t *Template) Parsed() bool {
	return t.decl != nil
}

// Declaration parses the template body once and returns the cached result on
// later calls.
func (t *Template) Declaration() (*Declaration, error) {
	if t.decl != nil {
		return t.decl, nil
	}

	decl, err := parseDeclaration(t.ID, t.Path)
	if err != nil {
		return nil, err
	}

	env := make(map[string]struct{})
	for _, m := range decl.Mappings {
		for _, name := range Placeholders(m.HostFolder) {
			env[name] = struct{}{}
		}
	}

	t.decl = decl
	t.requiredEnv = env
	return decl, nil
}

// RequiredEnv returns the sorted placeholder names used by the template's
// host folders. It is empty until the body has been parsed.
func (t *Template) RequiredEnv() []string {
	return sortedKeys(t.requiredEnv)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
