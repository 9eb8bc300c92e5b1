package historyfilter

import (
	"log/slog"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/xslices"
)

// Catalog returns the filters a user can choose from.
// The last dock and start/end filters are only included when requested.
func Catalog(includeDockStartEnd bool) []Filter {
	ff := []Filter{
		NoFilter,
		FromHours(6),
		FromHours(12),
		FromHours(24),
		FromDays(3),
		FromWeeks(1),
		FromWeeks(2),
		LastMonth(),
		LastQuarter(),
		LastHalfYear(),
		LastYear(),
		Last(10),
		Last(20),
		Last(100),
		Last(500),
	}
	if includeDockStartEnd {
		ff = append(ff, LastDock(), StartEnd())
	}
	return ff
}

// Selection is the user's choice of a filter from the catalog.
// The label of the chosen filter is persisted under a setting key.
type Selection struct {
	catalog []Filter
	index   int
	key     string
	s       app.SettingsStore
}

// NewSelection returns a new selection and restores the last choice from settings.
// When no choice was stored or the stored label is unknown the first filter is chosen.
func NewSelection(s app.SettingsStore, key string, includeDockStartEnd bool) *Selection {
	sel := &Selection{
		catalog: Catalog(includeDockStartEnd),
		key:     key,
		s:       s,
	}
	sel.index = sel.indexOf(s.StringWithFallback(key, ""))
	return sel
}

func (sel *Selection) indexOf(label string) int {
	for i, f := range sel.catalog {
		if f.label == label {
			return i
		}
	}
	return 0
}

// Labels returns the labels of all filters in the catalog.
func (sel *Selection) Labels() []string {
	return xslices.Map(sel.catalog, func(x Filter) string {
		return x.label
	})
}

// Index returns the catalog index of the chosen filter.
func (sel *Selection) Index() int {
	return sel.index
}

// Selected returns the chosen filter.
func (sel *Selection) Selected() Filter {
	return sel.catalog[sel.index]
}

// Select chooses a filter by index, persists the choice and returns the chosen filter.
// An invalid index chooses the first filter.
func (sel *Selection) Select(index int) Filter {
	if index < 0 || index >= len(sel.catalog) {
		slog.Warn("Invalid history filter index", "key", sel.key, "index", index)
		index = 0
	}
	sel.index = index
	f := sel.catalog[index]
	sel.s.SetString(sel.key, f.label)
	return f
}

// SelectLabel chooses a filter by label. Unknown labels choose the first filter.
func (sel *Selection) SelectLabel(label string) Filter {
	return sel.Select(sel.indexOf(label))
}
