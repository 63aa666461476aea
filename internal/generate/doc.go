// Package generate drives one run of the generator: it settles the device
// toggles, picks templates, resolves them, collects placeholder values and
// writes the sandbox descriptor.
//
// Every choice is taken from the first source that has it:
//
//	command-line Options -> defaults file -> Prompter
//
// The Prompter is only consulted for what is still open, so a complete
// defaults file runs without any questions. NonInteractive turns every
// open question into an error instead.
package generate
