package template

import (
	"regexp"
	"strings"
)

// placeholderRegex matches <NAME> tokens in host folders.
var placeholderRegex = regexp.MustCompile(`<([^<>]+)>`)

// Placeholders returns the distinct placeholder names in s, in order of first
// appearance.
func Placeholders(s string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range placeholderRegex.FindAllStringSubmatch(s, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Substitute replaces every <NAME> in s with values[NAME]. Names without a
// value are left in place and returned as missing.
func Substitute(s string, values map[string]string) (string, []string) {
	var missing []string
	out := placeholderRegex.ReplaceAllStringFunc(s, func(token string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
		v, ok := values[name]
		if !ok {
			missing = append(missing, name)
			return token
		}
		return v
	})
	return out, missing
}

// osVarRegex matches %NAME%, ${NAME} and $NAME references.
var osVarRegex = regexp.MustCompile(`%([^%\s]+)%|\$\{([^{}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// ExpandOSVars expands environment variable references in both Windows
// (%NAME%) and POSIX ($NAME, ${NAME}) forms. References lookup cannot resolve
// are left untouched.
func ExpandOSVars(s string, lookup func(string) (string, bool)) string {
	return osVarRegex.ReplaceAllStringFunc(s, func(ref string) string {
		m := osVarRegex.FindStringSubmatch(ref)
		name := m[1] + m[2] + m[3]
		if v, ok := lookup(name); ok {
			return v
		}
		return ref
	})
}
