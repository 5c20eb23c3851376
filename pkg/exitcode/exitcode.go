// Package exitcode maps run outcomes to process exit codes. No other
// package calls os.Exit; the command layer applies this mapping once.
package exitcode

import "github.com/DmarshalTU/safecracker/pkg/errors"

// Exit codes returned by the safecracker CLI.
// These constants allow scripts to check exit codes symbolically rather
// than using magic numbers.
const (
	// OK indicates the solve completed and the password was printed.
	OK = 0

	// Failure indicates a runtime failure, including any input-file error.
	Failure = 1

	// ConfigError indicates an invalid safecracker.toml.
	ConfigError = 2
)

// FromError maps the error returned by a command run to an exit code.
func FromError(err error) int {
	if err == nil {
		return OK
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrConfigLoad, errors.ErrConfigParse:
		return ConfigError
	default:
		return Failure
	}
}
