// Package template loads sandbox templates and flattens them into the folder
// mappings and logon commands of a single sandbox descriptor.
//
// # Template Files
//
// A template is an INI file. Its ID is the file's base name, extension
// included:
//
//	[Template]
//	name = Development
//	description = Source tree and toolchain
//	author = ops
//	requires = base.ini, git.ini
//	Mappings = 2
//	Commands = 1
//
//	[Mapping1]
//	HostFolder = <WORKSPACE>\src
//	SandboxFolder = C:\src
//	ReadOnly = 0
//
//	[Mapping2]
//	HostFolder = %%USERPROFILE%%\.ssh
//	SandboxFolder = C:\Users\WDAGUtilityAccount\.ssh
//	ReadOnly = 1
//
//	[Command1]
//	Command = explorer.exe C:\src
//
// Keys are case-insensitive. name and description are required; Mappings and
// Commands default to zero and must match the numbered sections exactly.
// Keys missing from a section fall back to [DEFAULT]. A literal % is written
// as %%, and %(key)s inserts another key's value from the same section or
// [DEFAULT]; any other % is a malformed template.
//
// # Store
//
// Load scans an ordered list of directories. The first directory that
// provides an ID wins, missing directories are skipped, and a file without
// name or description fails the whole load with a TemplateMetadata error.
// Only metadata is read at load time; a template body is parsed the first
// time it is resolved and cached afterwards.
//
// # Resolution
//
// Store.Resolve walks the requires relation breadth-first from the requested
// IDs. Each template is processed once, cycles included, and contributes its
// mappings and commands in the order it was reached:
//
//	res, err := store.Resolve([]string{"dev.ini"})
//	// res.Order       = [dev.ini base.ini git.ini]
//	// res.RequiredEnv = [WORKSPACE]
//
// # Normalization
//
// Normalize replaces <NAME> placeholders with caller-supplied values, expands
// %VAR% / $VAR references from the process environment, makes host folders
// absolute, and keeps only the first mapping for each sandbox folder. Dropped
// duplicates are returned as DuplicateSandboxPathWarning values.
package template
