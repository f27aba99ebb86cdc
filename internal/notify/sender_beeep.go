package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// beeepSender covers platforms without a native sender. beeep talks to the
// desktop notification service directly and falls back to a terminal bell
// for sound, so custom sound files are ignored.
type beeepSender struct {
	notify func(title, message string, icon any) error
	beep   func(freq float64, duration int) error
}

func newBeeepSender() *beeepSender {
	beeep.AppName = AppID
	return &beeepSender{
		notify: func(title, message string, icon any) error { return beeep.Notify(title, message, icon) },
		beep:   beeep.Beep,
	}
}

func (s *beeepSender) SendVisual(ctx context.Context, n Notification) error {
	return callWithContext(ctx, func() error {
		return s.notify(n.Title, visualBody(n), "")
	})
}

func (s *beeepSender) SendSound(ctx context.Context, _ string) error {
	return callWithContext(ctx, func() error {
		return s.beep(beeep.DefaultFreq, beeep.DefaultDuration)
	})
}

func (s *beeepSender) VisualAvailable() bool { return true }
func (s *beeepSender) SoundAvailable() bool  { return true }

// callWithContext runs fn and returns early when ctx is done. fn keeps
// running in the background since beeep cannot be interrupted.
func callWithContext(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
