// Package logging provides logging utilities for wsbgen.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via zerolog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs take alternating key/value pairs and are controlled by -v:
//
//	logging.Debug("processing template", "id", id, "mappings", n)
//	logging.Warn("duplicate sandbox folder", "sandbox", dest)
//
// --json switches the handler from the console writer to raw JSON lines.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loaded %d templates", n)
//	logging.UserSuccess("Wrote %s", path)
//	logging.UserWarning("%s already mapped, skipping", dest)
//	logging.UserError("Generation failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: Stdout
//   - UserWarning, UserError: Stderr
//
// Both writers are package variables so tests can capture them.
package logging
