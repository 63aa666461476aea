package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/logging"
)

// Defaults holds pre-answered prompts loaded from the defaults file. Any
// value left unset is asked for interactively.
type Defaults struct {
	General      General           `toml:"config"`
	Sandbox      Sandbox           `toml:"sandbox"`
	Environments map[string]string `toml:"environments"`
}

// General selects templates and output handling.
type General struct {
	Templates []string `toml:"templates"`
	MakeDir   *bool    `toml:"makedir"`
	Output    string   `toml:"output"`
}

// Sandbox holds device toggles. A nil field has not been configured.
type Sandbox struct {
	VGPU                 *bool `toml:"vgpu"`
	Networking           *bool `toml:"networking"`
	AudioInput           *bool `toml:"audio_input"`
	VideoInput           *bool `toml:"video_input"`
	ProtectedClient      *bool `toml:"protected_client"`
	PrinterRedirection   *bool `toml:"printer_redirection"`
	ClipboardRedirection *bool `toml:"clipboard_redirection"`
	MemoryInMB           *int  `toml:"memory_mb"`
}

// Settings is a fully decided set of device toggles.
type Settings struct {
	VGPU                 bool
	Networking           bool
	AudioInput           bool
	VideoInput           bool
	ProtectedClient      bool
	PrinterRedirection   bool
	ClipboardRedirection bool
	// MemoryInMB is zero when the sandbox should use the platform default.
	MemoryInMB int
}

// DefaultSettings matches Windows Sandbox's own defaults.
func DefaultSettings() Settings {
	return Settings{
		Networking:           true,
		ClipboardRedirection: true,
	}
}

// Toggle describes one device toggle for prompting and flag wiring.
type Toggle struct {
	// Key is the defaults-file key and the command-line flag name with
	// underscores replaced by dashes.
	Key     string
	Prompt  string
	Default bool
	Value   **bool
}

// Toggles lists the device toggles of s in prompt order.
func (s *Sandbox) Toggles() []Toggle {
	d := DefaultSettings()
	return []Toggle{
		{"vgpu", "Enable vGPU", d.VGPU, &s.VGPU},
		{"networking", "Allow networking", d.Networking, &s.Networking},
		{"audio_input", "Allow audio input", d.AudioInput, &s.AudioInput},
		{"video_input", "Allow video input", d.VideoInput, &s.VideoInput},
		{"protected_client", "Protected client", d.ProtectedClient, &s.ProtectedClient},
		{"printer_redirection", "Enable printer redirection", d.PrinterRedirection, &s.PrinterRedirection},
		{"clipboard_redirection", "Enable clipboard redirection", d.ClipboardRedirection, &s.ClipboardRedirection},
	}
}

// Unset returns the toggles that still need an answer.
func (s *Sandbox) Unset() []Toggle {
	var out []Toggle
	for _, t := range s.Toggles() {
		if *t.Value == nil {
			out = append(out, t)
		}
	}
	return out
}

// Merge fills every unset field of s from other.
func (s *Sandbox) Merge(other Sandbox) {
	theirs := other.Toggles()
	for i, t := range s.Toggles() {
		if *t.Value == nil && *theirs[i].Value != nil {
			v := **theirs[i].Value
			*t.Value = &v
		}
	}
	if s.MemoryInMB == nil && other.MemoryInMB != nil {
		v := *other.MemoryInMB
		s.MemoryInMB = &v
	}
}

// Resolve returns the settings with unset toggles taken from DefaultSettings.
func (s *Sandbox) Resolve() Settings {
	out := DefaultSettings()
	pick := func(v *bool, def bool) bool {
		if v == nil {
			return def
		}
		return *v
	}
	out.VGPU = pick(s.VGPU, out.VGPU)
	out.Networking = pick(s.Networking, out.Networking)
	out.AudioInput = pick(s.AudioInput, out.AudioInput)
	out.VideoInput = pick(s.VideoInput, out.VideoInput)
	out.ProtectedClient = pick(s.ProtectedClient, out.ProtectedClient)
	out.PrinterRedirection = pick(s.PrinterRedirection, out.PrinterRedirection)
	out.ClipboardRedirection = pick(s.ClipboardRedirection, out.ClipboardRedirection)
	if s.MemoryInMB != nil {
		out.MemoryInMB = *s.MemoryInMB
	}
	return out
}

// Validate checks that the Defaults are usable.
func (d *Defaults) Validate() error {
	if d.Sandbox.MemoryInMB != nil && *d.Sandbox.MemoryInMB < 0 {
		return fmt.Errorf("sandbox.memory_mb must not be negative (got %d)", *d.Sandbox.MemoryInMB)
	}
	for name := range d.Environments {
		if name == "" {
			return fmt.Errorf("environments: empty variable name")
		}
	}
	return nil
}

// LoadDefaults reads the defaults file at path. A missing file yields empty
// defaults.
func LoadDefaults(path string) (*Defaults, error) {
	d := &Defaults{Environments: map[string]string{}}
	if path == "" {
		return d, nil
	}

	md, err := toml.DecodeFile(path, d)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("defaults file not found", "path", path)
			return d, nil
		}
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse defaults file %s", path), err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		logging.Warn("ignoring unknown keys in defaults file", "path", path, "keys", keys)
	}

	if d.Environments == nil {
		d.Environments = map[string]string{}
	}

	if err := d.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid defaults file %s", path), err)
	}

	logging.Debug("loaded defaults",
		"path", path,
		"templates", len(d.General.Templates),
		"environments", len(d.Environments),
	)
	return d, nil
}
