package claude

import (
	"errors"
	"fmt"
)

var (
	// ErrSettingsCorrupted indicates the settings file exists but is not a JSON object.
	ErrSettingsCorrupted = errors.New("settings file is not a valid JSON object")

	// ErrSettingsUnreadable indicates the settings file exists but could not be read.
	ErrSettingsUnreadable = errors.New("settings file cannot be read")

	// ErrUnexpectedStructure indicates "hooks" or "hooks.<kind>" holds an incompatible JSON type.
	ErrUnexpectedStructure = errors.New("unexpected settings structure")

	// ErrLockUnavailable indicates the settings lock could not be acquired.
	ErrLockUnavailable = errors.New("settings lock unavailable")
)

// NotifierNotFoundError is returned by mutating operations when the notifier
// resolver cannot locate the executable to register.
type NotifierNotFoundError struct {
	AppName string
}

func (e *NotifierNotFoundError) Error() string {
	return fmt.Sprintf("%s notifier executable not found", e.AppName)
}
