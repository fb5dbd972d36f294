// Package cli parses command-line arguments, validates user input, and
// owns process-level concerns like exit codes. It translates CLI flags
// into the application's internal configuration.
package cli
