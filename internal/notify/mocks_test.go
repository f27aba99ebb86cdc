package notify

import (
	"context"
	"errors"
	"sync"
)

// mockSender records calls and returns configured errors.
type mockSender struct {
	mu sync.Mutex

	visualErr error
	soundErr  error
	block     chan struct{}

	visualCalls []Notification
	soundCalls  []string
}

func newMockSender() *mockSender {
	return &mockSender{}
}

func (m *mockSender) withVisualError(err error) *mockSender {
	m.visualErr = err
	return m
}

func (m *mockSender) withSoundError(err error) *mockSender {
	m.soundErr = err
	return m
}

// blocking makes every send wait until ctx is done or release is closed.
func (m *mockSender) blocking(release chan struct{}) *mockSender {
	m.block = release
	return m
}

func (m *mockSender) wait(ctx context.Context) {
	if m.block == nil {
		return
	}
	select {
	case <-m.block:
	case <-ctx.Done():
	}
}

func (m *mockSender) SendVisual(ctx context.Context, n Notification) error {
	m.mu.Lock()
	m.visualCalls = append(m.visualCalls, n)
	m.mu.Unlock()
	m.wait(ctx)
	return m.visualErr
}

func (m *mockSender) SendSound(ctx context.Context, soundFile string) error {
	m.mu.Lock()
	m.soundCalls = append(m.soundCalls, soundFile)
	m.mu.Unlock()
	m.wait(ctx)
	return m.soundErr
}

func (m *mockSender) VisualAvailable() bool { return true }
func (m *mockSender) SoundAvailable() bool  { return true }

func (m *mockSender) visuals() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.visualCalls...)
}

func (m *mockSender) sounds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.soundCalls...)
}

var (
	errMockVisual = errors.New("mock visual notification error")
	errMockSound  = errors.New("mock sound notification error")
)
