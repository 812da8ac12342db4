// Package logging assembles the structured slog logger used across the tool.
//
// The console handler renders colored level prefixes: errors go to stderr,
// everything else to stdout, and
// batch mode silences output entirely. Verbosity comes from the resolved
// VERBOSITY setting rather than a process-wide global, so callers construct
// the logger once from the settings store and pass it down explicitly.
package logging
