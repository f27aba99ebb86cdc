package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// Title is the notification title used for every hook event.
const Title = "Claude Code"

// Handler turns hook payloads into notifications according to its configuration.
type Handler struct {
	config NotificationConfig
	sender Sender
	logger *slog.Logger
}

// NewHandler creates a new notification handler with the given configuration.
// If notifications are disabled in config, the handler will no-op on all calls.
func NewHandler(config NotificationConfig) *Handler {
	return NewHandlerWithSender(config, NewSender())
}

// NewHandlerWithSender creates a handler with a custom sender (for testing).
func NewHandlerWithSender(config NotificationConfig, sender Sender) *Handler {
	return &Handler{
		config: config,
		sender: sender,
		logger: slog.Default(),
	}
}

// SetLogger replaces the logger used for delivery failures.
func (h *Handler) SetLogger(logger *slog.Logger) {
	h.logger = logger
}

// Config returns the handler's notification configuration
func (h *Handler) Config() NotificationConfig {
	return h.config
}

// isEnabled checks if notifications should be sent.
// Returns false if notifications are disabled or running in CI.
func (h *Handler) isEnabled() bool {
	return h.config.Enabled && !isCI()
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"TF_BUILD",
		"CODEBUILD_BUILD_ID",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// Build returns the notification for p, or false when the event is filtered out.
func (h *Handler) Build(p Payload) (Notification, bool) {
	switch p.HookEventName {
	case EventUserPromptSubmit:
		if !h.config.OnUserPromptSubmit {
			return Notification{}, false
		}
		msg := "Prompt submitted"
		if prompt := truncate(p.Prompt, h.config.MaxPromptLength); prompt != "" {
			msg = fmt.Sprintf("Working on: %s", prompt)
		}
		return NewNotification(Title, p.Project(), msg, TypeInfo), true

	case EventPreToolUse:
		if !h.config.OnPreToolUse {
			return Notification{}, false
		}
		tool := p.ToolName
		if tool == "" {
			tool = "a tool"
		}
		msg := fmt.Sprintf("Waiting for you: %s", tool)
		if tool == "ExitPlanMode" {
			msg = "Plan ready for review"
		}
		return NewNotification(Title, p.Project(), msg, TypeAttention), true

	default:
		return Notification{}, false
	}
}

// Handle dispatches the notification for p. It never returns an error: delivery
// problems are logged so the hook cannot disturb Claude Code.
func (h *Handler) Handle(ctx context.Context, p Payload) {
	if !h.isEnabled() {
		return
	}
	n, ok := h.Build(p)
	if !ok {
		h.logger.Debug("event filtered", "event", p.HookEventName)
		return
	}
	h.dispatch(ctx, n)
}

// dispatch sends a notification asynchronously with a timeout.
//
// Concurrency pattern: goroutine + done channel + select with timeout.
// The timeout allows audio files to play but prevents indefinite blocking.
func (h *Handler) dispatch(ctx context.Context, n Notification) {
	timeout := h.config.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.sendNotification(ctx, n)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		h.logger.Debug("notification timed out", "timeout", timeout)
	}
}

// sendNotification sends the notification based on configured type. For
// OutputBoth the banner and the sound go out concurrently.
func (h *Handler) sendNotification(ctx context.Context, n Notification) {
	var g errgroup.Group
	if h.config.Type == OutputVisual || h.config.Type == OutputBoth {
		g.Go(func() error {
			return h.logFailure("visual", h.sender.SendVisual(ctx, n))
		})
	}
	if h.config.Type == OutputSound || h.config.Type == OutputBoth {
		g.Go(func() error {
			return h.logFailure("sound", h.sender.SendSound(ctx, h.config.SoundFile))
		})
	}
	_ = g.Wait()
}

func (h *Handler) logFailure(kind string, err error) error {
	if err != nil {
		h.logger.Debug("notification failed", "kind", kind, "error", err)
	}
	return err
}
