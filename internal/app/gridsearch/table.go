package gridsearch

import "slices"

type tableRow struct {
	cells   []any
	visible bool
}

// Table is an in-memory grid.
// It is not safe for concurrent use.
type Table struct {
	enabled         bool
	layoutSuspended bool
	rows            []tableRow
	selected        int // -1 when nothing is selected
}

var _ Grid = (*Table)(nil)

func NewTable() *Table {
	t := &Table{enabled: true, selected: -1}
	return t
}

// SetRows replaces all rows. New rows are visible and the selection is cleared.
func (t *Table) SetRows(rows [][]any) {
	t.rows = make([]tableRow, len(rows))
	for i, r := range rows {
		t.rows[i] = tableRow{cells: slices.Clone(r), visible: true}
	}
	t.selected = -1
}

func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) Cells(row int) []any {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	return slices.Clone(t.rows[row].cells)
}

func (t *Table) IsVisible(row int) bool {
	if row < 0 || row >= len(t.rows) {
		return false
	}
	return t.rows[row].visible
}

// VisibleRows returns the indices of all visible rows.
func (t *Table) VisibleRows() []int {
	var s []int
	for i, r := range t.rows {
		if r.visible {
			s = append(s, i)
		}
	}
	return s
}

func (t *Table) SelectedRows() []int {
	if t.selected < 0 {
		return []int{}
	}
	return []int{t.selected}
}

// Select selects a row. An invalid row clears the selection.
func (t *Table) Select(row int) {
	if row < 0 || row >= len(t.rows) {
		t.selected = -1
		return
	}
	t.selected = row
}

// Unselect clears the selection.
func (t *Table) Unselect() {
	t.selected = -1
}

func (t *Table) Rebuild(visible []bool) {
	rows := t.rows
	t.rows = make([]tableRow, 0, len(rows))
	t.selected = -1
	for i, r := range rows {
		if i < len(visible) {
			r.visible = visible[i]
		}
		t.rows = append(t.rows, r)
	}
}

func (t *Table) IsEnabled() bool {
	return t.enabled
}

func (t *Table) SetEnabled(enabled bool) {
	t.enabled = enabled
}

func (t *Table) IsLayoutSuspended() bool {
	return t.layoutSuspended
}

func (t *Table) SuspendLayout() {
	t.layoutSuspended = true
}

func (t *Table) ResumeLayout() {
	t.layoutSuspended = false
}
