// Package progress renders step progress for the claudehooks CLI: a spinner on
// terminals and plain lines when output is piped.
package progress

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned when a Step's counters are inconsistent.
var ErrInvalidStep = errors.New("invalid step")

// Step is one unit of a multi-step command such as sync.
type Step struct {
	// Name is the human-readable step name (e.g., "validate settings")
	Name string
	// Number is the current step number (1-based index)
	Number int
	// Total is the number of steps in the command
	Total int
}

// Validate checks that the step counters are consistent.
func (s Step) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidStep)
	case s.Number <= 0:
		return fmt.Errorf("%w: number must be > 0", ErrInvalidStep)
	case s.Total <= 0:
		return fmt.Errorf("%w: total must be > 0", ErrInvalidStep)
	case s.Number > s.Total:
		return fmt.Errorf("%w: number cannot exceed total", ErrInvalidStep)
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the output is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether the terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether the terminal supports Unicode characters
	SupportsUnicode bool
}

// Symbols defines the character set for visual indicators
type Symbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// Warning is the attention indicator ("!" or "[WARN]")
	Warning string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
