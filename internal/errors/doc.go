// Package errors provides typed errors with exit codes for wsbgen.
//
// # Error Types
//
// Error is the base error type that wraps an error with an exit code:
//
//	type Error struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Subject string // File, template or variable names involved
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess            = 0 // Success
//	ExitGeneralError       = 1 // General/unknown errors
//	ExitConfigError        = 2 // Defaults file or search path problem
//	ExitTemplateMetadata   = 3 // [Template] section missing name/description
//	ExitUnknownTemplate    = 4 // Requested or required template does not exist
//	ExitMalformedTemplate  = 5 // Mappings/Commands counts do not match sections
//	ExitMissingEnvironment = 6 // Placeholder without a value
//	ExitOutputError        = 7 // Writing the descriptor or host folders failed
//	ExitCancelled          = 8 // Interactive prompt aborted
//
// # Matching
//
// Two *Error values match under errors.Is when their codes are equal, so
// callers test for a kind with the package sentinels:
//
//	if errors.Is(err, errors.ErrUnknownTemplate) {
//	    ...
//	}
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
