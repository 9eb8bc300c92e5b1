package eventfilter

import (
	"context"
	"log/slog"

	"github.com/maniartech/signals"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/journal"
)

// Selector lets the user configure an event filter with a checklist
// and persists the result under a settings key.
//
// At most one checklist is open at a time.
type Selector struct {
	// Changed is emitted with the new filter value after the checklist was closed.
	Changed signals.Signal[string]

	customList string
	customName string
	events     []string
	key        string
	list       *Checklist
	s          app.SettingsStore
}

// NewSelector returns a new selector for events, which persists under key.
func NewSelector(s app.SettingsStore, key string, events []string) *Selector {
	sel := &Selector{
		Changed: signals.NewSync[string](),
		events:  events,
		key:     key,
		s:       s,
	}
	return sel
}

// ConfigureCustom adds a custom item with the given name,
// which checks exactly the events in list.
// Only affects checklists opened afterwards.
func (sel *Selector) ConfigureCustom(name, list string) {
	sel.customName = name
	sel.customList = list
}

// Toggle opens the checklist when it is closed and closes it when it is open.
// It reports whether the checklist is open afterwards.
func (sel *Selector) Toggle() bool {
	if sel.IsOpen() {
		sel.Close()
		return false
	}
	sel.Open()
	return true
}

// Open opens a checklist initialized from the persisted filter.
// Does nothing when a checklist is already open.
func (sel *Selector) Open() Checklist {
	if sel.list != nil {
		return *sel.list
	}
	c := NewChecklist(sel.events)
	if sel.customName != "" {
		c = c.WithCustom(sel.customName, sel.customList)
	}
	c = c.WithValue(sel.Filter())
	sel.list = &c
	return c
}

// IsOpen reports whether a checklist is open.
func (sel *Selector) IsOpen() bool {
	return sel.list != nil
}

// Checklist returns the open checklist and reports whether it exists.
func (sel *Selector) Checklist() (Checklist, bool) {
	if sel.list == nil {
		return Checklist{}, false
	}
	return *sel.list, true
}

// Check changes item i of the open checklist and returns the resulting checklist.
// Does nothing when no checklist is open.
func (sel *Selector) Check(i int, checked bool) Checklist {
	if sel.list == nil {
		return Checklist{}
	}
	c := sel.list.Toggle(i, checked)
	sel.list = &c
	return c
}

// Close persists the state of the open checklist, emits the Changed signal and closes the checklist.
// Does nothing when no checklist is open.
func (sel *Selector) Close() {
	if sel.list == nil {
		return
	}
	v := sel.list.Value()
	sel.list = nil
	sel.s.SetString(sel.key, v)
	slog.Debug("Event filter changed", "key", sel.key, "value", v)
	sel.Changed.Emit(context.Background(), v)
}

// Filter returns the persisted filter value.
func (sel *Selector) Filter() string {
	return sel.s.StringWithFallback(sel.key, ValueAll)
}

// Allowed reports whether events with the given type pass the persisted filter.
// Event types are matched by their name in words, e.g. "FSDJump" as "FSD Jump".
func (sel *Selector) Allowed(eventType string) bool {
	return Allows(sel.Filter(), journal.Name(eventType))
}

// Predicate returns a function which reports whether events with the given type
// pass the current filter. The filter is read only once.
func (sel *Selector) Predicate() func(eventType string) bool {
	v := sel.Filter()
	switch v {
	case ValueAll:
		return func(string) bool { return true }
	case ValueNone:
		return func(string) bool { return false }
	}
	names := parseNames(v)
	return func(eventType string) bool {
		return names.Contains(journal.Name(eventType))
	}
}
