//go:build windows

package notify

import (
	"context"
	"fmt"
	"strings"
)

// windowsSender implements Sender for Windows using PowerShell
type windowsSender struct {
	available bool
}

func newPlatformSender() Sender {
	return &windowsSender{available: toolAvailable("powershell")}
}

const toastScript = `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText04)
$text = $template.GetElementsByTagName('text')
$text.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$text.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$text.Item(2).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('%s').Show($toast)
`

func powershell(ctx context.Context, script string) error {
	return run(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
}

func (s *windowsSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.available {
		return nil
	}
	script := fmt.Sprintf(toastScript,
		escapeForPowerShell(n.Title),
		escapeForPowerShell(n.Subtitle),
		escapeForPowerShell(n.Message),
		AppID,
	)
	return powershell(ctx, script)
}

func (s *windowsSender) SendSound(ctx context.Context, soundFile string) error {
	if !s.available {
		return nil
	}
	script := "[Console]::Beep(800, 200)"
	if file := ValidateSoundFile(soundFile); file != "" {
		script = fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", escapeForPowerShell(file))
	}
	return powershell(ctx, script)
}

func (s *windowsSender) VisualAvailable() bool { return s.available }
func (s *windowsSender) SoundAvailable() bool  { return s.available }

// escapeForPowerShell escapes s for use inside a single-quoted PowerShell string.
func escapeForPowerShell(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\'':
			b.WriteString("''")
		case '`', '$':
			b.WriteRune('`')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
