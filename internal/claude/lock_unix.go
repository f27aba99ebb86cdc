//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package claude

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// fileLock holds an open file with an exclusive flock.
type fileLock struct {
	f *os.File
}

// tryLock opens (or creates) the lock file and attempts a non-blocking
// exclusive flock. acquired is false when another holder owns the lock.
func tryLock(path string) (lock *fileLock, acquired bool, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, false, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &fileLock{f: f}, true, nil
}

// release drops the flock and closes the file.
func (l *fileLock) release() error {
	if l == nil || l.f == nil {
		return nil
	}
	// Closing the descriptor releases the lock even if LOCK_UN fails.
	_ = unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	err := l.f.Close()
	l.f = nil
	return err
}
