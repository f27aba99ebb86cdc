// Package notify turns Claude Code hook events into desktop notifications.
//
// The claude-notifier executable registered in settings.json receives the hook
// payload on stdin, and this package decides whether and how to alert the user.
// Native senders call OS tools through os/exec.
//
// # Platform Support
//
//   - macOS: osascript for visual notifications, afplay for sound
//   - Linux: notify-send for visual notifications, paplay for sound
//   - Windows: PowerShell for toast notifications and sound
//   - Other platforms: beeep (D-Bus notifications, terminal bell)
//
// # Usage
//
//	payload, err := notify.ParsePayload(os.Stdin)
//	if err != nil {
//		return err
//	}
//	handler := notify.NewHandler(notify.DefaultConfig())
//	handler.Handle(ctx, payload)
package notify
