package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/firefly-engineering/wsbgen/internal/errors"
)

const templateSection = "Template"

// Template files follow Python configparser conventions: keys are
// case-insensitive, values are kept as written (no quote stripping, no inline
// comments, no backslash continuation since Windows paths end in `\`).
// [DEFAULT] fallback and %-interpolation are applied by section.
var loadOptions = ini.LoadOptions{
	Insensitive:             true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// numberedSectionRegex matches MappingN / CommandN section names after
// case folding.
var numberedSectionRegex = regexp.MustCompile(`^(mapping|command)(\d+)$`)

func loadFile(path string) (*ini.File, error) {
	return ini.LoadSources(loadOptions, path)
}

// parseMetadata reads the [Template] section of a template file.
func parseMetadata(id, path string) (*Template, error) {
	f, err := loadFile(path)
	if err != nil {
		return nil, errors.TemplateMetadata(path, err)
	}

	sec, err := getSection(f, templateSection)
	if err != nil {
		return nil, errors.TemplateMetadata(path, fmt.Errorf("no [%s] section", templateSection))
	}

	t := &Template{ID: id, Path: path}
	fields := []struct {
		key      string
		dst      *string
		required bool
	}{
		{"name", &t.Name, true},
		{"description", &t.Description, true},
		{"author", &t.Author, false},
	}
	for _, fd := range fields {
		v, ok, err := sec.value(fd.key)
		if err != nil {
			return nil, errors.TemplateMetadata(path, err)
		}
		if fd.required && (!ok || strings.TrimSpace(v) == "") {
			return nil, errors.TemplateMetadata(path, fmt.Errorf("missing required key %q", fd.key))
		}
		*fd.dst = v
	}

	requires, ok, err := sec.value("requires")
	if err != nil {
		return nil, errors.TemplateMetadata(path, err)
	}
	if ok {
		t.Requires = parseList(requires)
	}

	return t, nil
}

// parseList splits a comma-separated list, trimming items and dropping empty
// ones.
func parseList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// parseDeclaration reads the mapping and command sections of a template. The
// counts in [Template] must agree exactly with the numbered sections present.
func parseDeclaration(id, path string) (*Declaration, error) {
	f, err := loadFile(path)
	if err != nil {
		return nil, errors.MalformedTemplate(id, err)
	}

	sec, err := getSection(f, templateSection)
	if err != nil {
		return nil, errors.MalformedTemplate(id, fmt.Errorf("no [%s] section", templateSection))
	}

	numMappings, err := declaredCount(sec, "Mappings")
	if err != nil {
		return nil, errors.MalformedTemplate(id, err)
	}
	numCommands, err := declaredCount(sec, "Commands")
	if err != nil {
		return nil, errors.MalformedTemplate(id, err)
	}

	if err := checkUndeclaredSections(f, numMappings, numCommands); err != nil {
		return nil, errors.MalformedTemplate(id, err)
	}

	decl := &Declaration{
		Mappings: make([]FolderMapping, 0, numMappings),
		Commands: make([]string, 0, numCommands),
	}

	for i := 1; i <= numMappings; i++ {
		m, err := parseMapping(f, i, numMappings)
		if err != nil {
			return nil, errors.MalformedTemplate(id, err)
		}
		decl.Mappings = append(decl.Mappings, m)
	}

	for i := 1; i <= numCommands; i++ {
		name := fmt.Sprintf("Command%d", i)
		cs, err := getSection(f, name)
		if err != nil {
			return nil, errors.MalformedTemplate(id, fmt.Errorf("declared Commands = %d but section [%s] is missing", numCommands, name))
		}
		cmd, err := requiredValue(cs, "Command")
		if err != nil {
			return nil, errors.MalformedTemplate(id, err)
		}
		decl.Commands = append(decl.Commands, cmd)
	}

	return decl, nil
}

func parseMapping(f *ini.File, i, declared int) (FolderMapping, error) {
	name := fmt.Sprintf("Mapping%d", i)
	ms, err := getSection(f, name)
	if err != nil {
		return FolderMapping{}, fmt.Errorf("declared Mappings = %d but section [%s] is missing", declared, name)
	}

	host, err := requiredValue(ms, "HostFolder")
	if err != nil {
		return FolderMapping{}, err
	}
	sandbox, err := requiredValue(ms, "SandboxFolder")
	if err != nil {
		return FolderMapping{}, err
	}

	readOnly := false
	raw, ok, err := ms.value("ReadOnly")
	if err != nil {
		return FolderMapping{}, err
	}
	if ok {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return FolderMapping{}, fmt.Errorf("[%s] ReadOnly must be 0 or 1 (got %q)", name, raw)
		}
		readOnly = v != 0
	}

	return FolderMapping{
		HostFolder:    host,
		SandboxFolder: sandbox,
		ReadOnly:      readOnly,
	}, nil
}

// declaredCount reads an integer count key. A missing key counts as zero.
func declaredCount(sec *section, key string) (int, error) {
	raw, ok, err := sec.value(key)
	if err != nil || !ok {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q)", key, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative (got %d)", key, n)
	}
	return n, nil
}

// checkUndeclaredSections rejects MappingN/CommandN sections numbered beyond
// the declared counts, which would otherwise be silently ignored.
func checkUndeclaredSections(f *ini.File, numMappings, numCommands int) error {
	for _, name := range f.SectionStrings() {
		match := numberedSectionRegex.FindStringSubmatch(strings.ToLower(name))
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		switch match[1] {
		case "mapping":
			if n < 1 || n > numMappings {
				return fmt.Errorf("section [Mapping%d] is not covered by Mappings = %d", n, numMappings)
			}
		case "command":
			if n < 1 || n > numCommands {
				return fmt.Errorf("section [Command%d] is not covered by Commands = %d", n, numCommands)
			}
		}
	}
	return nil
}

func requiredValue(sec *section, key string) (string, error) {
	v, ok, err := sec.value(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("[%s] is missing %s", sec.name, key)
	}
	return v, nil
}
