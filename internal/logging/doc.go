// Package logging builds the application's slog loggers.
//
// Two output formats are supported: a compact console format for terminal
// use and JSON for log files. Component loggers attach a standardized
// component attribute so lines can be traced back to the subsystem that
// emitted them.
package logging
