package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/template"
	"github.com/firefly-engineering/wsbgen/internal/testutil"
)

func hosts(mappings []template.FolderMapping) []string {
	out := make([]string, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, m.HostFolder)
	}
	return out
}

func TestResolve_Basic(t *testing.T) {
	store := loadFixtures(t, "basic")

	res, err := store.Resolve([]string{"dev.ini"})
	require.NoError(t, err)

	assert.Equal(t, []string{"dev.ini", "base.ini", "downloads.ini"}, res.Order)
	assert.Equal(t, []template.FolderMapping{
		{HostFolder: `<ROOT>\src`, SandboxFolder: `C:\src`, ReadOnly: false},
		{HostFolder: `<ROOT>\docs`, SandboxFolder: `C:\docs`, ReadOnly: true},
		{HostFolder: `<TOOLS>`, SandboxFolder: `C:\Tools`, ReadOnly: true},
		{HostFolder: `<ROOT>\downloads`, SandboxFolder: `C:\Users\WDAGUtilityAccount\Downloads`, ReadOnly: true},
		{HostFolder: `<TOOLS>\extra`, SandboxFolder: `C:\Tools`, ReadOnly: false},
	}, res.Mappings)
	assert.Equal(t, []string{
		"cmd.exe /c echo ready # not a comment",
		`"C:\Program Files\Git\bin\bash.exe" --login`,
		`explorer.exe C:\Tools`,
	}, res.Commands)
	assert.Equal(t, []string{"ROOT", "TOOLS"}, res.RequiredEnv)
}

func TestResolve_Diamond(t *testing.T) {
	store := loadFixtures(t, "diamond")

	res, err := store.Resolve([]string{"a.ini"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.ini", "b.ini", "c.ini", "d.ini"}, res.Order)
	assert.Equal(t, []string{`<ROOT>\a`, `<ROOT>\b`, `<ROOT>\c`, `<SHARED>\d`}, hosts(res.Mappings))
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Commands, "d contributes exactly once")
	assert.Equal(t, []string{"ROOT", "SHARED"}, res.RequiredEnv)
}

func TestResolve_Cycle(t *testing.T) {
	store := loadFixtures(t, "cycle")

	res, err := store.Resolve([]string{"x.ini"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x.ini", "y.ini"}, res.Order)
	assert.Equal(t, []string{"x", "y"}, res.Commands)

	res, err = store.Resolve([]string{"y.ini"})
	require.NoError(t, err)
	assert.Equal(t, []string{"y.ini", "x.ini"}, res.Order)
}

func TestResolve_SelfRequire(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpec(t, dir, "self.ini", testutil.TemplateSpec{
		Requires: []string{"self.ini"},
		Commands: []string{"once"},
	})
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	res, err := store.Resolve([]string{"self.ini"})
	require.NoError(t, err)
	assert.Equal(t, []string{"once"}, res.Commands)
}

func TestResolve_RequestedTwice(t *testing.T) {
	store := loadFixtures(t, "diamond")

	res, err := store.Resolve([]string{"d.ini", "b.ini", "d.ini"})
	require.NoError(t, err)
	assert.Equal(t, []string{"d.ini", "b.ini"}, res.Order)
	assert.Equal(t, []string{"d", "b"}, res.Commands)
}

func TestResolve_Empty(t *testing.T) {
	store := loadFixtures(t, "basic")

	res, err := store.Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Mappings)
	assert.Empty(t, res.Commands)
	assert.Empty(t, res.RequiredEnv)
}

func TestResolve_PlaceholderCollection(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpec(t, dir, "data.ini", testutil.TemplateSpec{
		Mappings: []testutil.Mapping{{Host: "<ROOT>/data", Sandbox: `C:\data`}},
	})
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	res, err := store.Resolve([]string{"data.ini"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ROOT"}, res.RequiredEnv)

	tmpl, _ := store.Get("data.ini")
	assert.Equal(t, []string{"ROOT"}, tmpl.RequiredEnv())
}

func TestResolve_NoRequiresRoundTrip(t *testing.T) {
	spec := testutil.TemplateSpec{
		Mappings: []testutil.Mapping{
			{Host: `C:\one`, Sandbox: `C:\1`, ReadOnly: true},
			{Host: `C:\two`, Sandbox: `C:\2`},
			{Host: `C:\three`, Sandbox: `C:\3`, ReadOnly: true},
		},
		Commands: []string{"first", "second"},
	}
	dir := t.TempDir()
	testutil.WriteSpec(t, dir, "solo.ini", spec)
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	res, err := store.Resolve([]string{"solo.ini"})
	require.NoError(t, err)

	require.Len(t, res.Mappings, len(spec.Mappings))
	for i, m := range spec.Mappings {
		assert.Equal(t, m.Host, res.Mappings[i].HostFolder)
		assert.Equal(t, m.Sandbox, res.Mappings[i].SandboxFolder)
		assert.Equal(t, m.ReadOnly, res.Mappings[i].ReadOnly)
	}
	assert.Equal(t, spec.Commands, res.Commands)
	assert.Empty(t, res.RequiredEnv)
}

func TestResolve_UnknownTemplate(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSpec(t, dir, "a.ini", testutil.TemplateSpec{Requires: []string{"ghost.ini"}})
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	tests := []struct {
		name      string
		requested []string
		subject   string
	}{
		{"requested", []string{"nope.ini"}, "nope.ini"},
		{"required", []string{"a.ini"}, "ghost.ini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := store.Resolve(tt.requested)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, errors.ErrUnknownTemplate))
			assert.Equal(t, errors.ExitUnknownTemplate, errors.GetExitCode(err))

			var e *errors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.subject, e.Subject)
		})
	}
}

func TestResolve_Malformed(t *testing.T) {
	store := loadFixtures(t, "broken")

	for _, id := range []string{"short_mappings.ini", "extra_command.ini", "bad_count.ini", "missing_host.ini"} {
		t.Run(id, func(t *testing.T) {
			res, err := store.Resolve([]string{id})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, errors.ErrMalformedTemplate), "got %v", err)
			assert.Equal(t, errors.ExitMalformedTemplate, errors.GetExitCode(err))
		})
	}
}

func TestResolve_MalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative count", "Mappings = -1\n"},
		{"readonly not integer", "Mappings = 1\n\n[Mapping1]\nHostFolder = a\nSandboxFolder = b\nReadOnly = yes\n"},
		{"missing sandbox folder", "Mappings = 1\n\n[Mapping1]\nHostFolder = a\n"},
		{"missing command key", "Commands = 1\n\n[Command1]\nRun = x\n"},
		{"missing command section", "Commands = 2\n\n[Command1]\nCommand = x\n"},
		{"mapping zero", "Mappings = 1\n\n[Mapping0]\nHostFolder = a\nSandboxFolder = b\n\n[Mapping1]\nHostFolder = a\nSandboxFolder = b\n"},
		{"single percent in host", "Mappings = 1\n\n[Mapping1]\nHostFolder = %USERPROFILE%\\x\nSandboxFolder = b\n"},
		{"single percent in command", "Commands = 1\n\n[Command1]\nCommand = echo 100%\n"},
		{"reference to missing key", "Commands = 1\n\n[Command1]\nCommand = %(tool)s\n"},
		{"unterminated reference", "Commands = 1\n\n[Command1]\ntool = x\nCommand = %(tool\n"},
		{"self reference", "Commands = 1\n\n[Command1]\nCommand = %(command)s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.WriteTemplate(t, dir, "m.ini", "[Template]\nname = M\ndescription = m\n"+tt.body)
			store, err := template.Load([]string{dir})
			require.NoError(t, err, "metadata alone is valid")

			_, err = store.Resolve([]string{"m.ini"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrMalformedTemplate), "got %v", err)
		})
	}
}

func TestResolve_OptionalFields(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTemplate(t, dir, "o.ini", "[template]\nname = O\ndescription = o\nmappings = 1\n\n[MAPPING1]\nhostfolder = /h\nsandboxfolder = C:\\s\n")
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	res, err := store.Resolve([]string{"o.ini"})
	require.NoError(t, err)
	require.Len(t, res.Mappings, 1)
	assert.Equal(t, "/h", res.Mappings[0].HostFolder)
	assert.False(t, res.Mappings[0].ReadOnly, "missing ReadOnly means read-write")
	assert.Empty(t, res.Commands, "missing Commands means zero")
}

func TestResolve_DeclarationCached(t *testing.T) {
	dir := fixtureDir(t, "diamond")
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	first, err := store.Resolve([]string{"a.ini"})
	require.NoError(t, err)

	for _, id := range first.Order {
		tmpl, _ := store.Get(id)
		assert.True(t, tmpl.Parsed(), id)
	}

	// The cached body is used even if the file changes underneath.
	testutil.WriteTemplate(t, dir, "d.ini", "garbage")

	second, err := store.Resolve([]string{"a.ini"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_PercentEscapes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTemplate(t, dir, "p.ini", `[Template]
name = 100%% sure
description = Profile folder
Mappings = 1
Commands = 1

[Mapping1]
HostFolder = %%USERPROFILE%%\x
SandboxFolder = C:\x

[Command1]
Command = cmd.exe /c echo %%DATE%% 50%%
`)
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	tmpl, ok := store.Get("p.ini")
	require.True(t, ok)
	assert.Equal(t, "100% sure", tmpl.Name)

	res, err := store.Resolve([]string{"p.ini"})
	require.NoError(t, err)
	assert.Equal(t, `%USERPROFILE%\x`, res.Mappings[0].HostFolder)
	assert.Equal(t, `cmd.exe /c echo %DATE% 50%`, res.Commands[0])

	n := &template.Normalizer{
		LookupEnv: func(name string) (string, bool) {
			if name == "USERPROFILE" {
				return `C:\Users\u`, true
			}
			return "", false
		},
		Abs: func(p string) (string, error) { return p, nil },
	}
	normalized, err := n.Normalize(res.Mappings, nil)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\u\x`, normalized.Mappings[0].HostFolder)
}

func TestResolve_DefaultSection(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTemplate(t, dir, "d.ini", `[DEFAULT]
ReadOnly = 1
author = ops

[Template]
name = Defaults
description = Mappings inherit ReadOnly
Mappings = 2

[Mapping1]
HostFolder = <ROOT>\a
SandboxFolder = C:\a

[Mapping2]
HostFolder = <ROOT>\b
SandboxFolder = C:\b
ReadOnly = 0
`)
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	tmpl, ok := store.Get("d.ini")
	require.True(t, ok)
	assert.Equal(t, "ops", tmpl.Author)

	res, err := store.Resolve([]string{"d.ini"})
	require.NoError(t, err)
	require.Len(t, res.Mappings, 2)
	assert.True(t, res.Mappings[0].ReadOnly, "inherited from [DEFAULT]")
	assert.False(t, res.Mappings[1].ReadOnly, "section value wins over [DEFAULT]")
}

func TestResolve_Interpolation(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTemplate(t, dir, "i.ini", `[DEFAULT]
tools = C:\Tools
git = %(tools)s\git

[Template]
name = Interpolated
description = References between keys
Mappings = 1
Commands = 1

[Mapping1]
HostFolder = <ROOT>\git
SandboxFolder = %(GIT)s

[Command1]
exe = %(git)s\bin\bash.exe
Command = "%(exe)s" --login
`)
	store, err := template.Load([]string{dir})
	require.NoError(t, err)

	res, err := store.Resolve([]string{"i.ini"})
	require.NoError(t, err)
	assert.Equal(t, `C:\Tools\git`, res.Mappings[0].SandboxFolder)
	assert.Equal(t, `"C:\Tools\git\bin\bash.exe" --login`, res.Commands[0])
}
