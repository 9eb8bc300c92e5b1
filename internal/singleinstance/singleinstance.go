// Package singleinstance ensures that only one instance of an app runs at a time.
package singleinstance

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/juju/mutex/v2"
)

// ErrAlreadyRunning is returned when another instance holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Defaults for acquiring the lock.
const (
	DefaultDelay   = 50 * time.Millisecond
	DefaultTimeout = 250 * time.Millisecond
)

// Lock is a process wide named lock.
type Lock struct {
	r mutex.Releaser
}

// Acquire acquires the lock with the given name and returns it.
// It returns [ErrAlreadyRunning] when the lock could not be acquired within the timeout.
// Names must start with a lower case letter and may only contain
// lower case letters, digits, dots and dashes.
func Acquire(name string, timeout time.Duration) (*Lock, error) {
	r, err := mutex.Acquire(mutex.Spec{
		Name:    name,
		Clock:   clock{},
		Delay:   DefaultDelay,
		Timeout: timeout,
	})
	if errors.Is(err, mutex.ErrTimeout) {
		return nil, ErrAlreadyRunning
	} else if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", name, err)
	}
	slog.Debug("Lock acquired", "name", name)
	return &Lock{r: r}, nil
}

// Release releases the lock. It is safe to call more than once.
func (l *Lock) Release() {
	if l.r == nil {
		return
	}
	l.r.Release()
	l.r = nil
}

// clock is the real clock.
type clock struct{}

func (clock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (clock) Now() time.Time {
	return time.Now()
}
