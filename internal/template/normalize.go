package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/logging"
)

// ResolvedMapping is a folder mapping with placeholders substituted and the
// host folder made absolute.
type ResolvedMapping struct {
	HostFolder    string
	SandboxFolder string
	ReadOnly      bool
}

// DuplicateSandboxPathWarning records a mapping dropped because an earlier
// mapping already claimed its sandbox folder.
type DuplicateSandboxPathWarning struct {
	SandboxFolder string
	KeptHost      string
	DroppedHost   string
}

func (w DuplicateSandboxPathWarning) String() string {
	return fmt.Sprintf("%s already mapped from %s, skipping %s", w.SandboxFolder, w.KeptHost, w.DroppedHost)
}

// Normalized is the mapping list ready for the descriptor.
type Normalized struct {
	Mappings []ResolvedMapping
	Warnings []DuplicateSandboxPathWarning
}

// Normalizer turns resolved template mappings into final host paths.
type Normalizer struct {
	// LookupEnv resolves OS environment references in host folders.
	LookupEnv func(string) (string, bool)
	// Abs makes a host folder absolute.
	Abs func(string) (string, error)
}

// NewNormalizer returns a Normalizer backed by the process environment and
// working directory.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		LookupEnv: os.LookupEnv,
		Abs:       filepath.Abs,
	}
}

// Normalize is NewNormalizer().Normalize.
func Normalize(mappings []FolderMapping, env map[string]string) (*Normalized, error) {
	return NewNormalizer().Normalize(mappings, env)
}

// Normalize substitutes <NAME> placeholders from env, expands OS environment
// references, makes host folders absolute and drops every mapping whose
// sandbox folder was already claimed by an earlier one.
//
// Every placeholder must have a value in env. Substitution runs over all
// mappings before any path is resolved, so a missing value never yields a
// partial list.
func (n *Normalizer) Normalize(mappings []FolderMapping, env map[string]string) (*Normalized, error) {
	hosts := make([]string, len(mappings))
	missing := make(map[string]struct{})
	for i, m := range mappings {
		host, unset := Substitute(m.HostFolder, env)
		for _, name := range unset {
			missing[name] = struct{}{}
		}
		hosts[i] = host
	}
	if len(missing) > 0 {
		return nil, errors.MissingEnvironmentValue(sortedKeys(missing))
	}

	result := &Normalized{
		Mappings: make([]ResolvedMapping, 0, len(mappings)),
	}
	claimed := make(map[string]int)

	for i, m := range mappings {
		host := ExpandOSVars(hosts[i], n.LookupEnv)
		abs, err := n.Abs(host)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve host folder %q: %w", host, err)
		}

		if idx, ok := claimed[m.SandboxFolder]; ok {
			w := DuplicateSandboxPathWarning{
				SandboxFolder: m.SandboxFolder,
				KeptHost:      result.Mappings[idx].HostFolder,
				DroppedHost:   abs,
			}
			logging.Debug("duplicate sandbox folder, dropping mapping",
				"sandbox", w.SandboxFolder,
				"kept", w.KeptHost,
				"dropped", w.DroppedHost,
			)
			result.Warnings = append(result.Warnings, w)
			continue
		}

		claimed[m.SandboxFolder] = len(result.Mappings)
		result.Mappings = append(result.Mappings, ResolvedMapping{
			HostFolder:    abs,
			SandboxFolder: m.SandboxFolder,
			ReadOnly:      m.ReadOnly,
		})
	}

	return result, nil
}
