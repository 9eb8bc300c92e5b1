package singleinstance_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edbuddy/edbuddy/internal/singleinstance"
)

func lockName() string {
	return fmt.Sprintf("edbuddy-test-%d", time.Now().UnixNano())
}

func TestAcquire(t *testing.T) {
	t.Run("can acquire and release lock", func(t *testing.T) {
		name := lockName()
		l, err := singleinstance.Acquire(name, singleinstance.DefaultTimeout)
		require.NoError(t, err)
		l.Release()
		l2, err := singleinstance.Acquire(name, singleinstance.DefaultTimeout)
		require.NoError(t, err)
		l2.Release()
	})
	t.Run("should report when lock is held", func(t *testing.T) {
		name := lockName()
		l, err := singleinstance.Acquire(name, singleinstance.DefaultTimeout)
		require.NoError(t, err)
		defer l.Release()
		done := make(chan error)
		go func() {
			_, err := singleinstance.Acquire(name, 100*time.Millisecond)
			done <- err
		}()
		assert.ErrorIs(t, <-done, singleinstance.ErrAlreadyRunning)
	})
	t.Run("should return error for invalid names", func(t *testing.T) {
		_, err := singleinstance.Acquire("Invalid Name", singleinstance.DefaultTimeout)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, singleinstance.ErrAlreadyRunning)
	})
	t.Run("release is idempotent", func(t *testing.T) {
		l, err := singleinstance.Acquire(lockName(), singleinstance.DefaultTimeout)
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			l.Release()
			l.Release()
		})
	})
}
