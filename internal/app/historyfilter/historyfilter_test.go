package historyfilter_test

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/history"
	"github.com/edbuddy/edbuddy/internal/app/historyfilter"
	"github.com/edbuddy/edbuddy/internal/app/settings"
	"github.com/edbuddy/edbuddy/internal/app/testutil"
	"github.com/edbuddy/edbuddy/internal/xslices"
)

func systems(entries []*app.HistoryEntry) []string {
	return xslices.Map(entries, func(x *app.HistoryEntry) string {
		return x.System
	})
}

func TestFilterLabels(t *testing.T) {
	cases := []struct {
		filter historyfilter.Filter
		want   string
	}{
		{historyfilter.NoFilter, "All"},
		{historyfilter.FromHours(6), "6 hours"},
		{historyfilter.FromDays(3), "3 days"},
		{historyfilter.FromWeeks(1), "One Week"},
		{historyfilter.FromWeeks(2), "2 weeks"},
		{historyfilter.LastMonth(), "Month"},
		{historyfilter.LastQuarter(), "Quarter"},
		{historyfilter.LastHalfYear(), "Half year"},
		{historyfilter.LastYear(), "Year"},
		{historyfilter.Last(10), "Last 10 entries"},
		{historyfilter.Last(500), "Last 500 entries"},
		{historyfilter.Last(1000), "Last 1,000 entries"},
		{historyfilter.LastDock(), "Last dock"},
		{historyfilter.StartEnd(), "Start/End Flag"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Label())
			assert.Equal(t, tc.want, tc.filter.String())
		})
	}
}

func TestFilterVariants(t *testing.T) {
	t.Run("max age filter", func(t *testing.T) {
		f := historyfilter.FromDays(3)
		d, ok := f.MaxAge()
		assert.True(t, ok)
		assert.Equal(t, 72*time.Hour, d)
		_, ok = f.MaxCount()
		assert.False(t, ok)
	})
	t.Run("max count filter", func(t *testing.T) {
		f := historyfilter.Last(20)
		n, ok := f.MaxCount()
		assert.True(t, ok)
		assert.Equal(t, 20, n)
		_, ok = f.MaxAge()
		assert.False(t, ok)
	})
	t.Run("flag filters", func(t *testing.T) {
		assert.True(t, historyfilter.NoFilter.IsNone())
		assert.True(t, historyfilter.LastDock().IsLastDock())
		assert.True(t, historyfilter.StartEnd().IsStartEnd())
		assert.False(t, historyfilter.LastDock().IsStartEnd())
	})
	t.Run("zero value is no filter", func(t *testing.T) {
		var f historyfilter.Filter
		assert.True(t, f.IsNone())
	})
}

func TestFilterApply(t *testing.T) {
	now := time.Date(3310, 5, 10, 12, 0, 0, 0, time.UTC)
	makeList := func() *history.List {
		return history.New([]*app.HistoryEntry{
			{ID: 1, System: "Sol", Time: now.Add(-4 * 24 * time.Hour), IsDocked: true},
			{ID: 2, System: "Achenar", Time: now.Add(-24 * time.Hour), StartMarker: true},
			{ID: 3, System: "Lave", Time: now.Add(-2 * time.Hour), StopMarker: true},
			{ID: 4, System: "Leesti", Time: now.Add(-time.Hour), IsDocked: true},
			{ID: 5, System: "Diso", Time: now},
		})
	}
	t.Run("no filter returns all entries", func(t *testing.T) {
		got := historyfilter.NoFilter.ApplyAt(makeList(), now)
		assert.Equal(t, []string{"Diso", "Leesti", "Lave", "Achenar", "Sol"}, systems(got))
	})
	t.Run("max age filter returns recent entries", func(t *testing.T) {
		got := historyfilter.FromDays(3).ApplyAt(makeList(), now)
		assert.Equal(t, []string{"Diso", "Leesti", "Lave", "Achenar"}, systems(got))
	})
	t.Run("max age filter includes entries at the boundary", func(t *testing.T) {
		got := historyfilter.FromHours(24).ApplyAt(makeList(), now)
		assert.Equal(t, []string{"Diso", "Leesti", "Lave", "Achenar"}, systems(got))
	})
	t.Run("max count filter returns most recent entries", func(t *testing.T) {
		got := historyfilter.Last(2).ApplyAt(makeList(), now)
		assert.Equal(t, []string{"Diso", "Leesti"}, systems(got))
	})
	t.Run("max count filter can return less", func(t *testing.T) {
		got := historyfilter.Last(10).ApplyAt(makeList(), now)
		assert.Len(t, got, 5)
	})
	t.Run("last dock filter delegates to list", func(t *testing.T) {
		got := historyfilter.LastDock().ApplyAt(makeList(), now)
		assert.Equal(t, []string{"Diso", "Leesti"}, systems(got))
	})
	t.Run("start end filter delegates to list", func(t *testing.T) {
		got := historyfilter.StartEnd().ApplyAt(makeList(), now)
		assert.Equal(t, []string{"Lave", "Achenar"}, systems(got))
	})
	t.Run("can apply to empty list", func(t *testing.T) {
		for _, f := range historyfilter.Catalog(true) {
			assert.Empty(t, f.ApplyAt(history.New(nil), now), f.Label())
		}
	})
	t.Run("apply uses current time", func(t *testing.T) {
		l := history.New([]*app.HistoryEntry{
			{ID: 1, System: "Sol", Time: time.Now().Add(-2 * time.Hour)},
			{ID: 2, System: "Lave", Time: time.Now().Add(-10 * time.Hour)},
		})
		got := historyfilter.FromHours(6).Apply(l)
		assert.Equal(t, []string{"Sol"}, systems(got))
	})
}

func TestFilterApplyTransactions(t *testing.T) {
	now := time.Date(3310, 5, 10, 12, 0, 0, 0, time.UTC)
	makeTransactions := func() []*app.LedgerTransaction {
		return []*app.LedgerTransaction{
			{ID: 1, Time: now.Add(-5 * 24 * time.Hour)},
			{ID: 2, Time: now.Add(-time.Hour)},
			{ID: 3, Time: now.Add(-2 * 24 * time.Hour)},
			{ID: 4, Time: now},
		}
	}
	ids := func(txs []*app.LedgerTransaction) []int64 {
		return xslices.Map(txs, func(x *app.LedgerTransaction) int64 {
			return x.ID
		})
	}
	t.Run("max count filter returns most recent first", func(t *testing.T) {
		got := historyfilter.Last(2).ApplyTransactionsAt(makeTransactions(), now)
		assert.Equal(t, []int64{4, 2}, ids(got))
	})
	t.Run("max age filter returns most recent first", func(t *testing.T) {
		got := historyfilter.FromDays(3).ApplyTransactionsAt(makeTransactions(), now)
		assert.Equal(t, []int64{4, 2, 3}, ids(got))
	})
	t.Run("max count filter does not modify input", func(t *testing.T) {
		txs := makeTransactions()
		historyfilter.Last(2).ApplyTransactionsAt(txs, now)
		assert.Equal(t, []int64{1, 2, 3, 4}, ids(txs))
	})
	t.Run("other filters return input unchanged", func(t *testing.T) {
		for _, f := range []historyfilter.Filter{
			historyfilter.NoFilter,
			historyfilter.LastDock(),
			historyfilter.StartEnd(),
		} {
			txs := makeTransactions()
			got := f.ApplyTransactionsAt(txs, now)
			assert.Equal(t, []int64{1, 2, 3, 4}, ids(got), f.Label())
			assert.Same(t, txs[0], got[0], f.Label())
		}
	})
	t.Run("apply uses current time", func(t *testing.T) {
		txs := []*app.LedgerTransaction{
			{ID: 1, Time: time.Now().Add(-10 * time.Hour)},
			{ID: 2, Time: time.Now().Add(-2 * time.Hour)},
		}
		got := historyfilter.FromHours(6).ApplyTransactions(txs)
		assert.Equal(t, []int64{2}, ids(got))
	})
}

func TestCatalog(t *testing.T) {
	t.Run("should return basic filters in order", func(t *testing.T) {
		got := xslices.Map(historyfilter.Catalog(false), historyfilter.Filter.Label)
		want := []string{
			"All",
			"6 hours",
			"12 hours",
			"24 hours",
			"3 days",
			"One Week",
			"2 weeks",
			"Month",
			"Quarter",
			"Half year",
			"Year",
			"Last 10 entries",
			"Last 20 entries",
			"Last 100 entries",
			"Last 500 entries",
		}
		assert.Equal(t, want, got)
	})
	t.Run("can include dock and start end filters", func(t *testing.T) {
		got := xslices.Map(historyfilter.Catalog(true), historyfilter.Filter.Label)
		assert.Len(t, got, 17)
		assert.Equal(t, []string{"Last dock", "Start/End Flag"}, got[15:])
	})
}

func TestSelection(t *testing.T) {
	const key = "TravelHistoryFilter"
	t.Run("should select first filter by default", func(t *testing.T) {
		s := test.NewTempApp(t).Preferences()
		sel := historyfilter.NewSelection(s, key, false)
		assert.Equal(t, 0, sel.Index())
		assert.True(t, sel.Selected().IsNone())
		assert.Len(t, sel.Labels(), 15)
	})
	t.Run("should restore stored choice", func(t *testing.T) {
		s := test.NewTempApp(t).Preferences()
		s.SetString(key, "One Week")
		sel := historyfilter.NewSelection(s, key, false)
		assert.Equal(t, 5, sel.Index())
		assert.Equal(t, "One Week", sel.Selected().Label())
	})
	t.Run("should select first filter when stored label is unknown", func(t *testing.T) {
		s := test.NewTempApp(t).Preferences()
		s.SetString(key, "Last dock")
		sel := historyfilter.NewSelection(s, key, false)
		assert.Equal(t, 0, sel.Index())
	})
	t.Run("should persist choice", func(t *testing.T) {
		s := test.NewTempApp(t).Preferences()
		sel := historyfilter.NewSelection(s, key, true)
		f := sel.Select(16)
		assert.True(t, f.IsStartEnd())
		assert.Equal(t, "Start/End Flag", s.String(key))
		sel2 := historyfilter.NewSelection(s, key, true)
		assert.Equal(t, 16, sel2.Index())
	})
	t.Run("should select first filter when index is invalid", func(t *testing.T) {
		s := test.NewTempApp(t).Preferences()
		sel := historyfilter.NewSelection(s, key, false)
		sel.Select(3)
		f := sel.Select(99)
		assert.True(t, f.IsNone())
		assert.Equal(t, 0, sel.Index())
		assert.Equal(t, "All", s.String(key))
	})
	t.Run("can select by label", func(t *testing.T) {
		s := test.NewTempApp(t).Preferences()
		sel := historyfilter.NewSelection(s, key, false)
		f := sel.SelectLabel("Last 100 entries")
		n, _ := f.MaxCount()
		assert.Equal(t, 100, n)
		assert.Equal(t, 13, sel.Index())
	})
	t.Run("can use settings from database", func(t *testing.T) {
		db, st, _ := testutil.NewDBInMemory()
		defer db.Close()
		s := settings.New(st)
		sel := historyfilter.NewSelection(s, key, false)
		sel.Select(4)
		sel2 := historyfilter.NewSelection(s, key, false)
		assert.Equal(t, "3 days", sel2.Selected().Label())
	})
}
