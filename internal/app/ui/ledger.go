package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/historyfilter"
	"github.com/edbuddy/edbuddy/internal/app/journal"
)

const settingLedgerFilter = "LedgerFilter"

// ledger shows the financial transactions of the commander.
type ledger struct {
	widget.BaseWidget

	bottom       *widget.Label
	filter       *historyfilter.Selection
	rows         []*app.LedgerTransaction
	rowsFiltered []*app.LedgerTransaction
	selectFilter *widget.Select
	table        *widget.Table
	u            *UI
}

func newLedger(u *UI) *ledger {
	a := &ledger{
		bottom: widget.NewLabel(""),
		filter: historyfilter.NewSelection(u.settings, settingLedgerFilter, false),
		u:      u,
	}
	a.ExtendBaseWidget(a)
	a.selectFilter = widget.NewSelect(a.filter.Labels(), nil)
	a.selectFilter.SetSelectedIndex(a.filter.Index())
	a.selectFilter.OnChanged = func(_ string) {
		a.filter.Select(a.selectFilter.SelectedIndex())
		a.applyFilter()
	}
	headers := []headerDef{
		{label: "Time", width: 150},
		{label: "Event", width: 180},
		{label: "Amount", width: 150},
		{label: "Balance", width: 150},
		{label: "Notes", width: 300},
	}
	a.table = makeDataTable(
		headers,
		func() int {
			return len(a.rowsFiltered)
		},
		func(row, col int) string {
			r := a.rowsFiltered[row]
			switch col {
			case 0:
				return r.Time.Local().Format(app.DateTimeFormat)
			case 1:
				return journal.Name(r.EventType)
			case 2:
				return formatCredits(r.Amount)
			case 3:
				return formatCredits(r.Balance)
			case 4:
				return r.Notes
			}
			return "?"
		},
		nil,
	)
	return a
}

func (a *ledger) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(
		container.NewHBox(a.selectFilter),
		a.bottom,
		nil,
		nil,
		a.table,
	)
	return widget.NewSimpleRenderer(c)
}

// set replaces the shown transactions.
func (a *ledger) set(txs []*app.LedgerTransaction) {
	a.rows = txs
	a.applyFilter()
}

func (a *ledger) applyFilter() {
	a.rowsFiltered = a.filter.Selected().ApplyTransactions(a.rows)
	a.table.Refresh()
	a.bottom.SetText(fmt.Sprintf(
		"Showing %s / %s transactions",
		humanize.Comma(int64(len(a.rowsFiltered))),
		humanize.Comma(int64(len(a.rows))),
	))
}
