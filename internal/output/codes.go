// Package output provides JSON/styled output formatting and error handling.
package output

// Exit codes returned by the tasklist binary.
const (
	ExitOK       = 0 // Success
	ExitUsage    = 1 // Invalid arguments or flags
	ExitConfig   = 2 // Configuration could not be resolved
	ExitStorage  = 3 // Preference store unreadable or unwritable
	ExitInternal = 4 // Anything else
)

// Error codes for JSON envelope.
const (
	CodeUsage    = "usage"
	CodeConfig   = "config"
	CodeStorage  = "storage"
	CodeInternal = "internal"
)

// ExitCodeFor returns the exit code for a given error code.
func ExitCodeFor(code string) int {
	switch code {
	case CodeUsage:
		return ExitUsage
	case CodeConfig:
		return ExitConfig
	case CodeStorage:
		return ExitStorage
	default:
		return ExitInternal
	}
}
