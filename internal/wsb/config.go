package wsb

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"

	"github.com/firefly-engineering/wsbgen/internal/errors"
)

const (
	textEnable  = "Enable"
	textDisable = "Disable"
	textDefault = "Default"
)

// MappedFolder is one <MappedFolder> entry.
type MappedFolder struct {
	HostFolder    string
	SandboxFolder string
	ReadOnly      bool
}

// Config buffers the settings of a Windows Sandbox descriptor. Nothing is
// rendered until Render or Save is called, so setters may be called in any
// order and more than once.
type Config struct {
	vgpu                 bool
	networking           bool
	audioInput           bool
	videoInput           bool
	protectedClient      bool
	printerRedirection   bool
	clipboardRedirection bool
	memoryInMB           *int

	mappedFolders []MappedFolder
	logonCommands []string
}

// New returns a Config holding the Windows Sandbox defaults.
func New() *Config {
	c := &Config{}
	c.Reset()
	return c
}

// Reset restores every setting to its default and clears all mapped folders
// and logon commands.
func (c *Config) Reset() {
	*c = Config{
		networking:           true,
		clipboardRedirection: true,
	}
}

func (c *Config) SetVGPU(enabled bool)                 { c.vgpu = enabled }
func (c *Config) SetNetworking(enabled bool)           { c.networking = enabled }
func (c *Config) SetAudioInput(enabled bool)           { c.audioInput = enabled }
func (c *Config) SetVideoInput(enabled bool)           { c.videoInput = enabled }
func (c *Config) SetProtectedClient(enabled bool)      { c.protectedClient = enabled }
func (c *Config) SetPrinterRedirection(enabled bool)   { c.printerRedirection = enabled }
func (c *Config) SetClipboardRedirection(enabled bool) { c.clipboardRedirection = enabled }

// SetMemoryInMB sets the sandbox memory. Zero or less removes the element so
// the platform default applies.
func (c *Config) SetMemoryInMB(mb int) {
	if mb <= 0 {
		c.memoryInMB = nil
		return
	}
	c.memoryInMB = &mb
}

// AddMappedFolder appends a folder mapping.
func (c *Config) AddMappedFolder(hostFolder, sandboxFolder string, readOnly bool) {
	c.mappedFolders = append(c.mappedFolders, MappedFolder{
		HostFolder:    hostFolder,
		SandboxFolder: sandboxFolder,
		ReadOnly:      readOnly,
	})
}

// AddLogonCommand appends a command run at sandbox logon.
func (c *Config) AddLogonCommand(command string) {
	c.logonCommands = append(c.logonCommands, command)
}

// MappedFolders returns the buffered folder mappings.
func (c *Config) MappedFolders() []MappedFolder {
	return append([]MappedFolder(nil), c.mappedFolders...)
}

// LogonCommands returns the buffered logon commands.
func (c *Config) LogonCommands() []string {
	return append([]string(nil), c.logonCommands...)
}

// Document builds a fresh XML document from the buffered settings.
func (c *Config) Document() *etree.Document {
	doc := etree.NewDocument()
	root := doc.CreateElement("Configuration")

	folders := root.CreateElement("MappedFolders")
	for _, m := range c.mappedFolders {
		f := folders.CreateElement("MappedFolder")
		f.CreateElement("HostFolder").SetText(m.HostFolder)
		f.CreateElement("SandboxFolder").SetText(m.SandboxFolder)
		f.CreateElement("ReadOnly").SetText(strconv.FormatBool(m.ReadOnly))
	}

	logon := root.CreateElement("LogonCommand")
	for _, cmd := range c.logonCommands {
		logon.CreateElement("Command").SetText(cmd)
	}

	root.CreateElement("vGPU").SetText(enableText(c.vgpu))
	root.CreateElement("Networking").SetText(defaultText(c.networking))
	root.CreateElement("AudioInput").SetText(enableText(c.audioInput))
	root.CreateElement("VideoInput").SetText(enableText(c.videoInput))
	root.CreateElement("ProtectedClient").SetText(enableText(c.protectedClient))
	root.CreateElement("PrinterRedirection").SetText(enableText(c.printerRedirection))
	root.CreateElement("ClipboardRedirection").SetText(defaultText(c.clipboardRedirection))
	if c.memoryInMB != nil {
		root.CreateElement("MemoryInMB").SetText(strconv.Itoa(*c.memoryInMB))
	}

	doc.Indent(2)
	return doc
}

// Render returns the descriptor as XML text.
func (c *Config) Render() (string, error) {
	out, err := c.Document().WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to render sandbox configuration: %w", err)
	}
	return out, nil
}

// Save renders the descriptor and writes it to path, replacing any existing
// file.
func (c *Config) Save(path string) error {
	out, err := c.Render()
	if err != nil {
		return errors.OutputError(path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.OutputError(path, err)
		}
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return errors.OutputError(path, err)
	}
	return nil
}

func enableText(enabled bool) string {
	if enabled {
		return textEnable
	}
	return textDisable
}

// defaultText is used by settings that Windows Sandbox enables by default.
func defaultText(enabled bool) string {
	if enabled {
		return textDefault
	}
	return textDisable
}
