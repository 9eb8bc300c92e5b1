// Package historyfilter provides filters for narrowing down the travel history
// and the ledger by age, by count or by flags.
package historyfilter

import (
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/xslices"
)

type kind uint

const (
	kindNone kind = iota
	kindMaxAge
	kindMaxCount
	kindLastDock
	kindStartEnd
)

// Filter is a policy for filtering history entries.
//
// A filter has exactly one variant: no filter, maximum age, maximum count,
// last dock only or start/end only. Filters are immutable.
// The zero value is the same as [NoFilter], but has no label.
type Filter struct {
	kind     kind
	label    string
	maxAge   time.Duration
	maxCount int
}

// NoFilter is the filter which lets everything through.
var NoFilter = Filter{kind: kindNone, label: "All"}

func newMaxAge(d time.Duration, label string) Filter {
	return Filter{kind: kindMaxAge, maxAge: d, label: label}
}

// FromHours returns a filter for entries not older than the given hours.
func FromHours(hours int) Filter {
	return newMaxAge(time.Duration(hours)*time.Hour, fmt.Sprintf("%d hours", hours))
}

// FromDays returns a filter for entries not older than the given days.
func FromDays(days int) Filter {
	return newMaxAge(time.Duration(days)*24*time.Hour, fmt.Sprintf("%d days", days))
}

// FromWeeks returns a filter for entries not older than the given weeks.
func FromWeeks(weeks int) Filter {
	var label string
	if weeks == 1 {
		label = "One Week"
	} else {
		label = fmt.Sprintf("%d weeks", weeks)
	}
	return newMaxAge(time.Duration(weeks)*7*24*time.Hour, label)
}

func LastMonth() Filter {
	return newMaxAge(30*24*time.Hour, "Month")
}

func LastQuarter() Filter {
	return newMaxAge(90*24*time.Hour, "Quarter")
}

func LastHalfYear() Filter {
	return newMaxAge(180*24*time.Hour, "Half year")
}

func LastYear() Filter {
	return newMaxAge(365*24*time.Hour, "Year")
}

// Last returns a filter for the most recent n entries.
func Last(n int) Filter {
	return Filter{
		kind:     kindMaxCount,
		maxCount: n,
		label:    fmt.Sprintf("Last %s entries", humanize.Comma(int64(n))),
	}
}

// LastDock returns a filter for the entries since the last dock.
func LastDock() Filter {
	return Filter{kind: kindLastDock, label: "Last dock"}
}

// StartEnd returns a filter for the entries between start and stop markers.
func StartEnd() Filter {
	return Filter{kind: kindStartEnd, label: "Start/End Flag"}
}

// Label returns the display name of a filter.
func (f Filter) Label() string {
	return f.label
}

func (f Filter) String() string {
	return f.label
}

// MaxAge returns the maximum age of entries and reports whether this is a max-age filter.
func (f Filter) MaxAge() (time.Duration, bool) {
	return f.maxAge, f.kind == kindMaxAge
}

// MaxCount returns the maximum number of entries and reports whether this is a max-count filter.
func (f Filter) MaxCount() (int, bool) {
	return f.maxCount, f.kind == kindMaxCount
}

func (f Filter) IsNone() bool {
	return f.kind == kindNone
}

func (f Filter) IsLastDock() bool {
	return f.kind == kindLastDock
}

func (f Filter) IsStartEnd() bool {
	return f.kind == kindStartEnd
}

// HistoryList is a travel history.
type HistoryList interface {
	// LastFirst returns all entries, most recent first.
	LastFirst() []*app.HistoryEntry
	// FilterToLastDock returns the entries since the last dock, most recent first.
	FilterToLastDock() []*app.HistoryEntry
	// FilterStartEnd returns the entries between start and stop markers, most recent first.
	FilterStartEnd() []*app.HistoryEntry
}

// Apply returns the entries of a history which pass the filter, most recent first.
func (f Filter) Apply(hl HistoryList) []*app.HistoryEntry {
	return f.ApplyAt(hl, time.Now())
}

// ApplyAt is like [Filter.Apply], but uses now as current time.
func (f Filter) ApplyAt(hl HistoryList, now time.Time) []*app.HistoryEntry {
	switch f.kind {
	case kindLastDock:
		return hl.FilterToLastDock()
	case kindStartEnd:
		return hl.FilterStartEnd()
	case kindMaxCount:
		entries := hl.LastFirst()
		n := max(0, min(f.maxCount, len(entries)))
		return slices.Clone(entries[:n])
	case kindMaxAge:
		oldest := now.Add(-f.maxAge)
		return xslices.Filter(hl.LastFirst(), func(x *app.HistoryEntry) bool {
			return !x.Time.Before(oldest)
		})
	}
	return hl.LastFirst()
}

// ApplyTransactions returns the ledger transactions which pass the filter.
//
// Only the max-count and max-age filters are supported for transactions.
// Their results are sorted by time, most recent first.
// All other filters return the transactions unchanged.
func (f Filter) ApplyTransactions(txs []*app.LedgerTransaction) []*app.LedgerTransaction {
	return f.ApplyTransactionsAt(txs, time.Now())
}

// ApplyTransactionsAt is like [Filter.ApplyTransactions], but uses now as current time.
func (f Filter) ApplyTransactionsAt(txs []*app.LedgerTransaction, now time.Time) []*app.LedgerTransaction {
	switch f.kind {
	case kindMaxCount:
		s := sortTransactionsDesc(txs)
		n := max(0, min(f.maxCount, len(s)))
		return s[:n]
	case kindMaxAge:
		oldest := now.Add(-f.maxAge)
		s := xslices.Filter(txs, func(x *app.LedgerTransaction) bool {
			return !x.Time.Before(oldest)
		})
		return sortTransactionsDesc(s)
	}
	return txs
}

func sortTransactionsDesc(txs []*app.LedgerTransaction) []*app.LedgerTransaction {
	s := slices.Clone(txs)
	slices.SortStableFunc(s, func(a, b *app.LedgerTransaction) int {
		return b.Time.Compare(a.Time)
	})
	return s
}
