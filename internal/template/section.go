package template

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// maxInterpolationDepth bounds nested %(name)s references.
const maxInterpolationDepth = 10

// section reads template keys the way configparser does: a key missing from
// the section falls back to [DEFAULT], and every value is %-interpolated.
type section struct {
	name     string
	sec      *ini.Section
	defaults *ini.Section
}

func getSection(f *ini.File, name string) (*section, error) {
	sec, err := f.GetSection(name)
	if err != nil {
		return nil, err
	}
	return &section{name: name, sec: sec, defaults: defaultSection(f)}, nil
}

// defaultSection returns the [DEFAULT] section if the file has one. In
// insensitive mode ini keeps that header's name as written while
// GetSection folds case, so the section is looked up by scanning.
func defaultSection(f *ini.File) *ini.Section {
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			return sec
		}
	}
	return nil
}

// raw returns the value as written. Key.String is avoided since ini runs its
// own %(name)s substitution there.
func (s *section) raw(key string) (string, bool) {
	if s.sec.HasKey(key) {
		return s.sec.Key(key).Value(), true
	}
	if s.defaults != nil && s.defaults.HasKey(key) {
		return s.defaults.Key(key).Value(), true
	}
	return "", false
}

// value returns the interpolated value of key.
func (s *section) value(key string) (string, bool, error) {
	raw, ok := s.raw(key)
	if !ok {
		return "", false, nil
	}
	v, err := s.interpolate(key, raw, 1)
	if err != nil {
		return "", true, err
	}
	return v, true, nil
}

// interpolate expands %% to % and %(name)s to the value of name. Any other
// use of % is an error.
func (s *section) interpolate(key, raw string, depth int) (string, error) {
	if depth > maxInterpolationDepth {
		return "", fmt.Errorf("[%s] %s: interpolation nested deeper than %d", s.name, key, maxInterpolationDepth)
	}

	var b strings.Builder
	rest := raw
	for {
		p := strings.IndexByte(rest, '%')
		if p < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:p])
		rest = rest[p:]

		switch {
		case strings.HasPrefix(rest, "%%"):
			b.WriteByte('%')
			rest = rest[2:]
		case strings.HasPrefix(rest, "%("):
			end := strings.Index(rest, ")s")
			if end < 0 || end == 2 || strings.Contains(rest[2:end], ")") {
				return "", fmt.Errorf("[%s] %s: bad interpolation reference in %q", s.name, key, raw)
			}
			ref := strings.ToLower(rest[2:end])
			rest = rest[end+2:]

			v, ok := s.raw(ref)
			if !ok {
				return "", fmt.Errorf("[%s] %s: interpolation references missing key %q", s.name, key, ref)
			}
			if strings.Contains(v, "%") {
				var err error
				if v, err = s.interpolate(key, v, depth+1); err != nil {
					return "", err
				}
			}
			b.WriteString(v)
		default:
			return "", fmt.Errorf("[%s] %s: '%%' must be followed by '%%' or '(' in %q", s.name, key, raw)
		}
	}
}
