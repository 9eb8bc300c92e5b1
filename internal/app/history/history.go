// Package history provides the travel history of a commander.
package history

import (
	"context"
	"fmt"
	"slices"

	"github.com/edbuddy/edbuddy/internal/app"
)

// Storage is the subset of the storage needed to load a history.
type Storage interface {
	ListHistoryEntries(ctx context.Context) ([]*app.HistoryEntry, error)
}

// List is a travel history. It is immutable after creation.
type List struct {
	entries []*app.HistoryEntry // most recent first
}

// New returns a new list from entries in any order.
func New(entries []*app.HistoryEntry) *List {
	s := slices.Clone(entries)
	slices.SortStableFunc(s, func(a, b *app.HistoryEntry) int {
		if c := b.Time.Compare(a.Time); c != 0 {
			return c
		}
		if b.ID > a.ID {
			return 1
		}
		if b.ID < a.ID {
			return -1
		}
		return 0
	})
	return &List{entries: s}
}

// Load returns a list with all history entries from storage.
func Load(ctx context.Context, st Storage) (*List, error) {
	entries, err := st.ListHistoryEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return New(entries), nil
}

// Size returns the number of entries.
func (l *List) Size() int {
	return len(l.entries)
}

// LastFirst returns all entries, most recent first.
func (l *List) LastFirst() []*app.HistoryEntry {
	return slices.Clone(l.entries)
}

// FilterToLastDock returns the entries since the last dock, most recent first.
// The docked entry itself is included.
// When there was no dock all entries are returned.
func (l *List) FilterToLastDock() []*app.HistoryEntry {
	for i, e := range l.entries {
		if e.IsDocked {
			return slices.Clone(l.entries[:i+1])
		}
	}
	return l.LastFirst()
}

// FilterStartEnd returns the entries between start and stop markers, most recent first.
//
// Entries are scanned oldest first. A start marker begins recording
// and a stop marker ends it. Marker entries are included.
// Entries outside of a marked range are skipped.
func (l *List) FilterStartEnd() []*app.HistoryEntry {
	var r []*app.HistoryEntry
	var started bool
	for _, e := range slices.Backward(l.entries) {
		if e.StartMarker {
			started = true
		}
		if started {
			r = append(r, e)
		}
		if e.StopMarker {
			started = false
		}
	}
	slices.Reverse(r)
	return r
}
