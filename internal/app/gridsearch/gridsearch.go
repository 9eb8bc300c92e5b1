// Package gridsearch provides a search which hides the rows of a grid not matching a search string.
package gridsearch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/edbuddy/edbuddy/internal/xstrings"
)

// Grid is a grid of rows and cells which can hide rows.
type Grid interface {
	// RowCount returns the number of rows, including hidden rows.
	RowCount() int
	// Cells returns the cell values of a row. Nil values are empty cells.
	Cells(row int) []any
	// IsVisible reports whether a row is visible.
	IsVisible(row int) bool
	// SelectedRows returns the indices of the selected rows in ascending order.
	SelectedRows() []int
	// Select makes row the only selected row.
	Select(row int)
	// Rebuild detaches all rows and reinserts them in the original order with new visibility.
	Rebuild(visible []bool)
	SetEnabled(enabled bool)
	SuspendLayout()
	ResumeLayout()
}

// Search shows the rows of g which contain s in at least one cell and hides all other rows.
// An empty s shows all rows. The comparison ignores case.
//
// The grid is only rebuilt when the visibility of at least one row changes.
// After a rebuild the previously selected row is selected again by position.
// Reports whether the grid was rebuilt.
func Search(g Grid, s string) bool {
	start := time.Now()
	g.SuspendLayout()
	g.SetEnabled(false)
	defer func() {
		g.SetEnabled(true)
		g.ResumeLayout()
		slog.Debug("Grid search finished", "search", s, "rows", g.RowCount(), "duration", time.Since(start))
	}()

	n := g.RowCount()
	visible := make([]bool, n)
	var hasChanged bool
	for i := range n {
		visible[i] = s == "" || rowContains(g.Cells(i), s)
		if visible[i] != g.IsVisible(i) {
			hasChanged = true
		}
	}
	slog.Debug("Grid search compared rows", "duration", time.Since(start))
	if !hasChanged {
		return false
	}
	var selected int
	if rows := g.SelectedRows(); len(rows) > 0 {
		selected = rows[0]
	}
	g.Rebuild(visible)
	if selected < n {
		g.Select(selected)
	}
	return true
}

func rowContains(cells []any, s string) bool {
	for _, c := range cells {
		if c == nil {
			continue
		}
		if xstrings.ContainsFold(fmt.Sprint(c), s) {
			return true
		}
	}
	return false
}
