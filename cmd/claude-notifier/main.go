// claude-notifier is the command Claude Code runs for UserPromptSubmit and
// PreToolUse hooks. It reads the hook payload from stdin and shows a desktop
// notification. It always exits 0 and prints nothing to stdout, so it never
// blocks a prompt or a tool call.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ariel-frischer/claudehooks/internal/build"
	"github.com/ariel-frischer/claudehooks/internal/config"
	"github.com/ariel-frischer/claudehooks/internal/notify"
	"gopkg.in/natefinch/lumberjack.v2"
)

// debugEnv enables debug logging on stderr.
const debugEnv = "CLAUDE_NOTIFIER_DEBUG"

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "version") {
		fmt.Printf("claude-notifier %s\n", build.Version)
		return
	}
	run(context.Background(), os.Stdin, os.Stderr, nil)
}

// run handles one hook invocation. A nil sender uses the platform sender.
func run(ctx context.Context, stdin io.Reader, stderr io.Writer, sender notify.Sender) {
	notifications := notify.DefaultConfig()
	cfg, cfgErr := config.Load("")
	if cfgErr == nil {
		notifications = cfg.Notifications
	}

	logger, closeLog := newLogger(stderr, notifications.LogFile)
	defer closeLog()
	if cfgErr != nil {
		logger.Debug("using default notification settings", "error", cfgErr)
	}

	payload, err := notify.ParsePayload(stdin)
	if err != nil {
		logger.Debug("ignoring hook input", "error", err)
		return
	}
	logger.Debug("hook received", "event", payload.HookEventName, "session", payload.SessionID, "tool", payload.ToolName)

	if sender == nil {
		sender = notify.NewSender()
	}
	handler := notify.NewHandlerWithSender(notifications, sender)
	handler.SetLogger(logger)
	handler.Handle(ctx, payload)
}

// newLogger logs to stderr at warn level, or debug with CLAUDE_NOTIFIER_DEBUG.
// When logFile is set it receives every record at debug level and stderr is
// only written in debug mode. The file is rotated at 1 MB.
func newLogger(stderr io.Writer, logFile string) (*slog.Logger, func()) {
	level := slog.LevelWarn
	if os.Getenv(debugEnv) != "" {
		level = slog.LevelDebug
	}
	if logFile == "" {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})), func() {}
	}

	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}
	w := io.MultiWriter(stderr, rotating)
	if level != slog.LevelDebug {
		w = rotating
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = rotating.Close() }
}
