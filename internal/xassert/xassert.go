// Package xassert extends the testify assert package with additional test helpers.
package xassert

import (
	"testing"
	"time"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/assert"
)

// EqualSet asserts that two sets are equal.
func EqualSet[T comparable](t *testing.T, want, got set.Set[T]) bool {
	t.Helper()
	return assert.Truef(t, got.Equal(want), "Not equal:\nexpected: %s\nactual  : %s", want, got)
}

// EqualTime asserts that two time values are equal.
func EqualTime(t *testing.T, want, got time.Time) bool {
	t.Helper()
	return assert.Truef(t, got.Equal(want), "Not equal:\nexpected: %s\nactual  : %s", want, got)
}
