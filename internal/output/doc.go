// Package output provides structured output handling for the todoist-mcp CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and automated agents.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Server started", "addr": addr})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "addr": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, missing token)
//	output.ExitSystemError // 2: System error (network, I/O)
//	output.ExitConflict    // 3: Conflict (vendor rejected the change)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("TODOIST_API_TOKEN is not set")
//	output.NewSystemError("listening on :8080 failed")
//	output.NewConflictError("task already completed")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
