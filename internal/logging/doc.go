// Package logging provides a simple leveled logging interface for the
// terminal video player.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable, or
// forced to debug with DEBUG=1. All output goes to stderr: during playback
// stdout is reserved for rendered frames and terminal control sequences.
package logging
