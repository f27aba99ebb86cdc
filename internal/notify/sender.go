package notify

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// AppID identifies the notifier to the OS notification center where one is needed.
const AppID = "claude-notifier"

// Sender defines the interface for platform-specific notification senders.
// Implementations must stop any child process when ctx is done.
type Sender interface {
	// SendVisual sends a visual notification to the OS notification system
	SendVisual(ctx context.Context, n Notification) error

	// SendSound plays an audio notification
	SendSound(ctx context.Context, soundFile string) error

	// VisualAvailable returns true if visual notifications are supported
	VisualAvailable() bool

	// SoundAvailable returns true if sound notifications are supported
	SoundAvailable() bool
}

// NewSender creates the sender for the current OS. Platforms without a
// native implementation go through beeep.
func NewSender() Sender {
	return newPlatformSender()
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// run executes a notification tool, killing it when ctx is done.
func run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile returns soundFile when it is an existing regular file
// in a supported audio format. Otherwise it logs a warning and returns "" so
// the caller falls back to the platform default.
func ValidateSoundFile(soundFile string) string {
	if soundFile == "" {
		return ""
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		slog.Warn("custom sound file unusable, using default", "path", soundFile, "error", err)
		return ""
	}
	if info.IsDir() {
		slog.Warn("sound path is a directory, using default", "path", soundFile)
		return ""
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		slog.Warn("unsupported audio format, using default", "path", soundFile, "ext", ext)
		return ""
	}

	return soundFile
}

// visualBody joins the subtitle and message for platforms without a subtitle slot.
func visualBody(n Notification) string {
	if n.Subtitle == "" {
		return n.Message
	}
	return n.Subtitle + ": " + n.Message
}
