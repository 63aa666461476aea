package template

import (
	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/logging"
)

// Resolution is the flattened result of resolving a set of templates.
type Resolution struct {
	// Order lists template IDs in the order they were processed.
	Order    []string
	Mappings []FolderMapping
	Commands []string
	// RequiredEnv is the sorted union of placeholder names across all
	// processed templates.
	RequiredEnv []string
}

// Resolve expands requested over the requires relation and concatenates the
// mappings and commands of every reachable template.
//
// The walk is breadth-first over a FIFO worklist. Required IDs are appended
// after the template that requires them, and an ID is skipped when popped if
// it was already processed. That keeps cycles and diamonds finite and each
// template contributes exactly once, in closure order.
//
// Any unknown ID, requested or required, fails the whole resolution.
func (s *Store) Resolve(requested []string) (*Resolution, error) {
	queue := append([]string(nil), requested...)
	processed := make(map[string]bool)
	env := make(map[string]struct{})
	res := &Resolution{}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if processed[id] {
			continue
		}

		t, ok := s.templates[id]
		if !ok {
			return nil, errors.UnknownTemplate(id)
		}

		decl, err := t.Declaration()
		if err != nil {
			return nil, err
		}

		processed[id] = true
		res.Order = append(res.Order, id)
		res.Mappings = append(res.Mappings, decl.Mappings...)
		res.Commands = append(res.Commands, decl.Commands...)
		queue = append(queue, t.Requires...)
		for name := range t.requiredEnv {
			env[name] = struct{}{}
		}

		logging.Debug("resolved template",
			"id", id,
			"mappings", len(decl.Mappings),
			"commands", len(decl.Commands),
			"requires", t.Requires,
		)
	}

	res.RequiredEnv = sortedKeys(env)
	return res, nil
}
