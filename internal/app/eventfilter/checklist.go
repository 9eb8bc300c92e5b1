// Package eventfilter provides a filter for journal events,
// which the user configures with a checklist.
//
// The checklist starts with the reserved items "All" and "None",
// optionally followed by a custom item which checks a predefined set of events.
// After the reserved items follow the events.
//
// The state of a checklist is persisted as value:
// "All" when all events are checked, "None" when no event is checked
// and otherwise the names of the checked events separated by semicolons.
package eventfilter

import (
	"slices"
	"strings"

	"github.com/ErikKalkoken/go-set"

	"github.com/edbuddy/edbuddy/internal/xslices"
)

// Special filter values
const (
	ValueAll  = "All"
	ValueNone = "None"
)

const separator = ";"

const (
	indexAll = iota
	indexNone
	indexCustom
)

// Checklist is the state of an event checklist.
//
// A checklist is a value. Methods never modify the receiver,
// but return a new checklist instead.
type Checklist struct {
	events     []string
	checked    set.Set[string]
	all        bool
	none       bool
	custom     bool
	customName string
	customList string
	hasCustom  bool
}

// NewChecklist returns a new checklist for events with nothing checked.
// Duplicate and empty event names are removed.
func NewChecklist(events []string) Checklist {
	events = xslices.Filter(xslices.Deduplicate(events), func(x string) bool {
		return x != ""
	})
	c := Checklist{events: events}
	c.updateFlags()
	return c
}

// WithCustom returns a copy of the checklist with a custom item.
// Checking the custom item checks exactly the events in list.
func (c Checklist) WithCustom(name, list string) Checklist {
	c2 := c.clone()
	c2.hasCustom = true
	c2.customName = name
	c2.customList = c2.withChecked(c2.names(list)).Value()
	c2.updateFlags()
	return c2
}

// WithValue returns a copy of the checklist with the checked state set from a persisted value.
// Unknown event names are ignored.
func (c Checklist) WithValue(v string) Checklist {
	c2 := c.withChecked(c.names(v))
	c2.updateFlags()
	return c2
}

func (c Checklist) withChecked(names set.Set[string]) Checklist {
	c2 := c.clone()
	c2.checked = set.Of(xslices.Filter(c2.events, func(x string) bool {
		return names.Contains(x)
	})...)
	return c2
}

// names returns the event names contained in value v.
func (c Checklist) names(v string) set.Set[string] {
	if v == ValueAll {
		return set.Of(c.events...)
	}
	return parseNames(v)
}

func parseNames(v string) set.Set[string] {
	if v == ValueNone {
		return set.Of[string]()
	}
	return set.Of(strings.Split(v, separator)...)
}

func (c Checklist) clone() Checklist {
	c2 := c
	c2.events = slices.Clone(c.events)
	c2.checked = set.Collect(c.checked.All())
	return c2
}

// Reserved returns the number of reserved items.
func (c Checklist) Reserved() int {
	if c.hasCustom {
		return 3
	}
	return 2
}

// Len returns the number of items.
func (c Checklist) Len() int {
	return c.Reserved() + len(c.events)
}

// Label returns the label of item i.
func (c Checklist) Label(i int) string {
	switch {
	case i == indexAll:
		return ValueAll
	case i == indexNone:
		return ValueNone
	case i == indexCustom && c.hasCustom:
		return c.customName
	case i >= c.Reserved() && i < c.Len():
		return c.events[i-c.Reserved()]
	}
	return ""
}

// Labels returns the labels of all items.
func (c Checklist) Labels() []string {
	s := make([]string, c.Len())
	for i := range s {
		s[i] = c.Label(i)
	}
	return s
}

// IsChecked reports whether item i is checked.
func (c Checklist) IsChecked(i int) bool {
	switch {
	case i == indexAll:
		return c.all
	case i == indexNone:
		return c.none
	case i == indexCustom && c.hasCustom:
		return c.custom
	case i >= c.Reserved() && i < c.Len():
		return c.checked.Contains(c.events[i-c.Reserved()])
	}
	return false
}

// Value returns the persisted form of the checked events.
func (c Checklist) Value() string {
	var s []string
	for _, x := range c.events {
		if c.checked.Contains(x) {
			s = append(s, x)
		}
	}
	switch len(s) {
	case len(c.events):
		return ValueAll
	case 0:
		return ValueNone
	}
	return strings.Join(s, separator)
}

// Toggle returns the checklist after item i changed to checked.
// Invalid indices return an unchanged copy.
func (c Checklist) Toggle(i int, checked bool) Checklist {
	c2 := c.clone()
	if i < 0 || i >= c.Len() {
		return c2
	}
	reserved := c2.Reserved()
	isEvent := i >= reserved
	switch {
	case i == indexAll:
		c2.all = checked
	case i == indexNone:
		c2.none = checked
	case i == indexCustom && c2.hasCustom:
		c2.custom = checked
	default:
		name := c2.events[i-reserved]
		if checked {
			c2.checked.Add(name)
		} else {
			c2.checked.Delete(name)
		}
	}
	if isEvent && checked {
		c2.all, c2.none, c2.custom = false, false, false
	}
	if i == indexAll && checked {
		c2.checked = set.Of(c2.events...)
	}
	if (i == indexNone && checked) || (!isEvent && !checked) {
		c2.checked.Clear()
	}
	if c2.hasCustom && i == indexCustom && checked {
		c2 = c2.withChecked(c2.names(c2.customList))
	}
	c2.updateFlags()
	return c2
}

func (c *Checklist) updateFlags() {
	v := c.Value()
	c.all = v == ValueAll
	c.none = v == ValueNone
	c.custom = c.hasCustom && v == c.customList
}

// Allows reports whether an event with name passes the filter value v.
func Allows(v, name string) bool {
	switch v {
	case ValueAll:
		return true
	case ValueNone:
		return false
	}
	return parseNames(v).Contains(name)
}
