//go:build darwin

package notify

import (
	"context"
	"fmt"
)

// DefaultMacOSSound is played when no custom sound file is configured.
const DefaultMacOSSound = "/System/Library/Sounds/Glass.aiff"

// darwinSender implements Sender for macOS using osascript and afplay
type darwinSender struct {
	visualAvailable bool
	soundAvailable  bool
}

func newPlatformSender() Sender {
	return &darwinSender{
		visualAvailable: toolAvailable("osascript"),
		soundAvailable:  toolAvailable("afplay"),
	}
}

// appleScript builds the display notification statement for n.
func appleScript(n Notification) string {
	script := fmt.Sprintf(`display notification %q with title %q`, n.Message, n.Title)
	if n.Subtitle != "" {
		script += fmt.Sprintf(` subtitle %q`, n.Subtitle)
	}
	return script
}

func (s *darwinSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return nil
	}
	return run(ctx, "osascript", "-e", appleScript(n))
}

func (s *darwinSender) SendSound(ctx context.Context, soundFile string) error {
	if !s.soundAvailable {
		return nil
	}
	file := ValidateSoundFile(soundFile)
	if file == "" {
		file = DefaultMacOSSound
	}
	return run(ctx, "afplay", file)
}

func (s *darwinSender) VisualAvailable() bool { return s.visualAvailable }
func (s *darwinSender) SoundAvailable() bool  { return s.soundAvailable }
