package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrLockTimeout means another writer held the settings lock for too long.
var ErrLockTimeout = errors.New("config: lock timeout")

// lockWait is how long a writer waits for the lock. A lock file older than
// staleAfter belongs to a crashed process and is taken over.
var (
	lockWait   = 5 * time.Second
	staleAfter = 30 * time.Second
	lockPoll   = 50 * time.Millisecond
)

// WithLock runs fn while holding f's lock file. Settings, custom commands
// and the to-do list are all rewritten under it, since reminders and the
// front-end can write concurrently with the main loop.
func (f *File) WithLock(fn func() error) error {
	l := fileLock{path: f.path + ".lock"}
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.release()

	return fn()
}

type fileLock struct {
	path string
	held *os.File
}

func (l *fileLock) acquire() error {
	timeout := time.NewTimer(lockWait)
	defer timeout.Stop()
	tick := time.NewTicker(lockPoll)
	defer tick.Stop()

	for {
		ok, err := l.try()
		if err != nil || ok {
			return err
		}
		select {
		case <-timeout.C:
			return ErrLockTimeout
		case <-tick.C:
		}
	}
}

// try makes one attempt. It reports false when someone else holds the lock.
func (l *fileLock) try() (bool, error) {
	if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > staleAfter {
		_ = os.Remove(l.path)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(file, "%d\n", os.Getpid())
		l.held = file
		return true, nil
	case errors.Is(err, os.ErrExist):
		return false, nil
	default:
		return false, fmt.Errorf("create lock %s: %w", l.path, err)
	}
}

func (l *fileLock) release() {
	if l.held == nil {
		return
	}
	_ = l.held.Close()
	_ = os.Remove(l.path)
	l.held = nil
}
