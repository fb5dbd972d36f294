// Package app wires the seedweave application together: it configures the
// logger, loads and binds the seed plan, builds the registry and executor,
// attaches the terminal reporter, and maps run outcomes to errors the CLI
// turns into exit codes.
package app
