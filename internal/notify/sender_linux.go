//go:build linux

package notify

import (
	"context"
	"os"
)

// linuxSender implements Sender for Linux using notify-send and paplay
type linuxSender struct {
	visualAvailable bool
	soundAvailable  bool
}

func newPlatformSender() Sender {
	return &linuxSender{
		visualAvailable: toolAvailable("notify-send") && hasDisplay(),
		soundAvailable:  toolAvailable("paplay"),
	}
}

// hasDisplay reports whether an X11 or Wayland session is available.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// notifySendArgs builds the notify-send argument list for n.
func notifySendArgs(n Notification) []string {
	urgency := "normal"
	if n.NotificationType == TypeAttention {
		urgency = "critical"
	}
	return []string{"-a", AppID, "-u", urgency, n.Title, visualBody(n)}
}

func (s *linuxSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return nil
	}
	return run(ctx, "notify-send", notifySendArgs(n)...)
}

// SendSound plays soundFile with paplay. Linux has no default sound, so an
// unusable file is skipped silently.
func (s *linuxSender) SendSound(ctx context.Context, soundFile string) error {
	if !s.soundAvailable {
		return nil
	}
	file := ValidateSoundFile(soundFile)
	if file == "" {
		return nil
	}
	return run(ctx, "paplay", file)
}

func (s *linuxSender) VisualAvailable() bool { return s.visualAvailable }
func (s *linuxSender) SoundAvailable() bool  { return s.soundAvailable }
