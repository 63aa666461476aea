// Package config provides path configuration and the defaults file for
// wsbgen.
//
// # Search Path
//
// DefaultPaths builds the template search path from the working directory
// and the XDG base directories:
//
//	./templates                      (only when it exists)
//	$XDG_CONFIG_HOME/wsbgen/templates
//	$XDG_DATA_DIRS/wsbgen/templates  (each entry, in order)
//
// The first directory that provides a template ID wins.
//
// # Defaults File
//
// $XDG_CONFIG_HOME/wsbgen/config.toml pre-answers prompts:
//
//	[config]
//	templates = ["base.ini", "dev.ini"]
//	makedir = true
//	output = "dev.wsb"
//
//	[sandbox]
//	networking = false
//	memory_mb = 4096
//
//	[environments]
//	ROOT = 'C:\Users\me\work'
//
// Toggles left out of [sandbox] stay nil and are prompted for. A missing
// defaults file is not an error.
package config
