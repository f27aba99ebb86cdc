package progress

import (
	"os"

	"golang.org/x/term"
)

// DetectTerminalCapabilities inspects f and the NO_COLOR / CLAUDEHOOKS_ASCII
// environment variables.
func DetectTerminalCapabilities(f *os.File) TerminalCapabilities {
	isTTY := IsTerminal(f)
	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && os.Getenv("NO_COLOR") == "",
		SupportsUnicode: isTTY && os.Getenv("CLAUDEHOOKS_ASCII") != "1",
	}
}

// IsTerminal reports whether f is attached to a terminal. A nil file is not.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// SelectSymbols returns the appropriate symbol set based on terminal capabilities
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{
			Checkmark:  "✓",
			Failure:    "✗",
			Warning:    "!",
			SpinnerSet: 14, // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
		}
	}

	return Symbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		Warning:    "[WARN]",
		SpinnerSet: 9, // | / - \
	}
}
