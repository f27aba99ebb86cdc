//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || windows)

package claude

import (
	"errors"
	"io/fs"
	"os"
)

// fileLock is an exclusive-create lock file for platforms without flock.
// The file exists exactly while the lock is held.
type fileLock struct {
	path string
}

func tryLock(path string) (lock *fileLock, acquired bool, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, false, err
	}
	return &fileLock{path: path}, true, nil
}

func (l *fileLock) release() error {
	if l == nil || l.path == "" {
		return nil
	}
	err := os.Remove(l.path)
	l.path = ""
	return err
}
