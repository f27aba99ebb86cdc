package cli

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/cli/shared"
	"github.com/ariel-frischer/claudehooks/internal/config"
)

// errClaudeMissing reports that the Claude Code settings directory does not exist.
var errClaudeMissing = errors.New("claude settings directory not found")

// ExitCode maps err to the process exit code.
//
//	0 success
//	1 validation failed, settings corrupted or unreadable, unexpected structure
//	3 invalid arguments or configuration
//	4 missing dependency (notifier executable or Claude Code)
//	6 settings lock unavailable
func ExitCode(err error) int {
	if err == nil {
		return shared.ExitSuccess
	}
	if code := shared.ExitCode(err); code != shared.ExitValidationFailed {
		return code
	}

	var notFound *claude.NotifierNotFoundError
	var invalid *config.ValidationError
	switch {
	case errors.As(err, &notFound), errors.Is(err, errClaudeMissing):
		return shared.ExitMissingDependency
	case errors.Is(err, claude.ErrLockUnavailable):
		return shared.ExitLockUnavailable
	case errors.As(err, &invalid):
		return shared.ExitInvalidArguments
	default:
		return shared.ExitValidationFailed
	}
}

func missingClaude(dir string) error {
	return fmt.Errorf("%w: %s (is Claude Code installed?)", errClaudeMissing, dir)
}
