package notify

import "time"

// NotificationType represents the type of notification event
type NotificationType string

const (
	// TypeInfo indicates an informational notification
	TypeInfo NotificationType = "info"
	// TypeAttention indicates Claude is waiting on the user
	TypeAttention NotificationType = "attention"
)

// OutputType represents the notification output type
type OutputType string

const (
	// OutputSound sends only an audible notification
	OutputSound OutputType = "sound"
	// OutputVisual sends only a visual notification
	OutputVisual OutputType = "visual"
	// OutputBoth sends both sound and visual notifications
	OutputBoth OutputType = "both"
)

// ValidOutputType checks if the given string is a valid output type
func ValidOutputType(s string) bool {
	switch OutputType(s) {
	case OutputSound, OutputVisual, OutputBoth:
		return true
	default:
		return false
	}
}

// NotificationConfig holds user preferences for notification behavior.
// It is loaded from the "notifications" section of the claudehooks config.
type NotificationConfig struct {
	// Enabled is the master switch for all notifications (default: true)
	Enabled bool `koanf:"enabled" json:"enabled"`

	// Type specifies the notification output type: sound, visual, or both (default: visual)
	Type OutputType `koanf:"type" json:"type"`

	// SoundFile is an optional custom sound file path
	SoundFile string `koanf:"sound_file" json:"sound_file"`

	// OnUserPromptSubmit notifies when a prompt is submitted (default: true)
	OnUserPromptSubmit bool `koanf:"on_user_prompt_submit" json:"on_user_prompt_submit"`

	// OnPreToolUse notifies before a matched tool runs (default: true)
	OnPreToolUse bool `koanf:"on_pre_tool_use" json:"on_pre_tool_use"`

	// MaxPromptLength truncates prompt text shown in notifications (default: 80)
	MaxPromptLength int `koanf:"max_prompt_length" json:"max_prompt_length"`

	// Timeout bounds how long a notification may take before it is abandoned (default: 5s)
	Timeout time.Duration `koanf:"timeout" json:"timeout"`

	// LogFile receives claude-notifier debug logs when set. Claude Code discards
	// hook stderr, so this is the only record of what the notifier did.
	LogFile string `koanf:"log_file" json:"log_file"`
}

// DefaultConfig returns a NotificationConfig with default values
func DefaultConfig() NotificationConfig {
	return NotificationConfig{
		Enabled:            true,
		Type:               OutputVisual,
		SoundFile:          "",
		OnUserPromptSubmit: true,
		OnPreToolUse:       true,
		MaxPromptLength:    80,
		Timeout:            5 * time.Second,
	}
}

// Notification represents a single notification event to dispatch
type Notification struct {
	// Title is the notification title (e.g., "Claude Code")
	Title string

	// Subtitle names the project the event came from; may be empty
	Subtitle string

	// Message is the notification body text
	Message string

	// NotificationType indicates the event type
	NotificationType NotificationType
}

// NewNotification creates a new Notification with the given parameters
func NewNotification(title, subtitle, message string, notificationType NotificationType) Notification {
	return Notification{
		Title:            title,
		Subtitle:         subtitle,
		Message:          message,
		NotificationType: notificationType,
	}
}
