// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It runs
// a single conversion for the manada command.
package cli
