package ui

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxdialog "github.com/ErikKalkoken/fyne-kx/dialog"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/eventfilter"
	"github.com/edbuddy/edbuddy/internal/app/gridsearch"
	"github.com/edbuddy/edbuddy/internal/app/history"
	"github.com/edbuddy/edbuddy/internal/app/historyfilter"
	"github.com/edbuddy/edbuddy/internal/app/journal"
	"github.com/edbuddy/edbuddy/internal/xslices"
)

// Setting keys
const (
	settingTravelHistoryEvents = "TravelHistoryEventFilter"
	settingTravelHistoryFilter = "TravelHistoryFilter"
)

// travelHistory shows the travel history of the commander.
type travelHistory struct {
	widget.BaseWidget

	bottom       *widget.Label
	eventButton  *ttwidget.Button
	events       *eventfilter.Selector
	eventsDialog dialog.Dialog
	filter       *historyfilter.Selection
	grid         *gridsearch.Table
	list         *history.List
	rows         []*app.HistoryEntry // rows of grid
	search       *widget.Entry
	selectFilter *widget.Select
	table        *widget.Table
	targetButton *ttwidget.Button
	top          *widget.Label
	u            *UI
	visible      []int // grid rows shown by table
}

func newTravelHistory(u *UI) *travelHistory {
	a := &travelHistory{
		bottom: widget.NewLabel(""),
		events: eventfilter.NewSelector(u.settings, settingTravelHistoryEvents, journal.EventNames()),
		filter: historyfilter.NewSelection(u.settings, settingTravelHistoryFilter, true),
		grid:   gridsearch.NewTable(),
		list:   history.New(nil),
		top:    makeTopLabel(),
		u:      u,
	}
	a.ExtendBaseWidget(a)

	a.events.ConfigureCustom("Travel", "Docked;FSD Jump;Location;Undocked")
	a.events.Changed.AddListener(func(_ context.Context, _ string) {
		a.applyFilter()
	})

	a.selectFilter = widget.NewSelect(a.filter.Labels(), nil)
	a.selectFilter.SetSelectedIndex(a.filter.Index())
	a.selectFilter.OnChanged = func(_ string) {
		a.filter.Select(a.selectFilter.SelectedIndex())
		a.applyFilter()
	}

	a.eventButton = ttwidget.NewButtonWithIcon("Events", theme.ListIcon(), func() {
		a.toggleEventFilter()
	})
	a.eventButton.SetToolTip("Choose which events are shown")

	a.search = widget.NewEntry()
	a.search.SetPlaceHolder("Search all columns")
	a.search.ActionItem = kxwidget.NewIconButton(theme.CancelIcon(), func() {
		a.search.SetText("")
	})
	a.search.OnChanged = func(s string) {
		a.applySearch(s)
	}

	a.targetButton = ttwidget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		a.setTargetFromSelection()
	})
	a.targetButton.SetToolTip("Make the selected system the current target")
	a.targetButton.Disable()

	headers := []headerDef{
		{label: "Time", width: 150},
		{label: "Event", width: 180},
		{label: "System", width: 200},
		{label: "Position", width: 250},
	}
	a.table = makeDataTable(
		headers,
		func() int {
			return len(a.visible)
		},
		func(row, col int) string {
			cells := a.grid.Cells(a.visible[row])
			if col >= len(cells) {
				return ""
			}
			return fmt.Sprint(cells[col])
		},
		func(row int) {
			a.grid.Select(a.visible[row])
			a.targetButton.Enable()
		},
	)
	return a
}

func (a *travelHistory) CreateRenderer() fyne.WidgetRenderer {
	top := container.NewVBox(
		a.top,
		container.NewBorder(
			nil,
			nil,
			container.NewHBox(a.selectFilter, a.eventButton),
			a.targetButton,
			a.search,
		),
	)
	c := container.NewBorder(top, a.bottom, nil, nil, a.table)
	return widget.NewSimpleRenderer(c)
}

// set replaces the shown history.
func (a *travelHistory) set(hl *history.List) {
	a.list = hl
	a.applyFilter()
}

// applyFilter shows the entries which pass the history filter and the event filter.
func (a *travelHistory) applyFilter() {
	allowed := a.events.Predicate()
	entries := xslices.Filter(a.filter.Selected().Apply(a.list), func(x *app.HistoryEntry) bool {
		return allowed(x.EventType)
	})
	a.rows = entries
	a.grid.SetRows(xslices.Map(entries, func(x *app.HistoryEntry) []any {
		return []any{
			x.Time.Local().Format(app.DateTimeFormat),
			journal.Name(x.EventType),
			x.System,
			formatPosition(x.Position),
		}
	}))
	gridsearch.Search(a.grid, a.search.Text)
	a.refreshTable()
	a.top.SetText(fmt.Sprintf("%s | Events: %s", a.filter.Selected().Label(), a.eventsLabel()))
}

func (a *travelHistory) eventsLabel() string {
	v := a.events.Filter()
	switch v {
	case eventfilter.ValueAll, eventfilter.ValueNone:
		return v
	}
	return "Selected"
}

// applySearch hides all rows not matching s.
func (a *travelHistory) applySearch(s string) {
	if !gridsearch.Search(a.grid, s) {
		return
	}
	a.refreshTable()
}

func (a *travelHistory) refreshTable() {
	a.visible = a.grid.VisibleRows()
	a.table.UnselectAll()
	a.targetButton.Disable()
	a.table.Refresh()
	if rows := a.grid.SelectedRows(); len(rows) > 0 {
		for i, r := range a.visible {
			if r == rows[0] {
				a.table.Select(widget.TableCellID{Row: i, Col: 0})
				break
			}
		}
	}
	a.bottom.SetText(fmt.Sprintf("Showing %d / %d entries", len(a.visible), a.list.Size()))
}

func (a *travelHistory) selectedEntry() (*app.HistoryEntry, bool) {
	rows := a.grid.SelectedRows()
	if len(rows) == 0 || rows[0] >= len(a.rows) {
		return nil, false
	}
	return a.rows[rows[0]], true
}

func (a *travelHistory) setTargetFromSelection() {
	e, ok := a.selectedEntry()
	if !ok {
		return
	}
	a.u.ts.SetNotedSystem(e.System, e.ID, e.Position.X, e.Position.Y, e.Position.Z)
	a.u.targetChanged.Emit(context.Background(), a.u.ts.Target())
}

// toggleEventFilter opens the event filter dialog or closes it when it is already open.
func (a *travelHistory) toggleEventFilter() {
	if !a.events.Toggle() {
		if a.eventsDialog != nil {
			a.eventsDialog.Hide()
		}
		return
	}
	var checks *widget.List
	checks = widget.NewList(
		func() int {
			c, ok := a.events.Checklist()
			if !ok {
				return 0
			}
			return c.Len()
		},
		func() fyne.CanvasObject {
			return widget.NewCheck("Template", nil)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			c, ok := a.events.Checklist()
			if !ok {
				return
			}
			check := co.(*widget.Check)
			check.OnChanged = nil
			check.Text = c.Label(id)
			check.Checked = c.IsChecked(id)
			check.Refresh()
			check.OnChanged = func(on bool) {
				a.events.Check(id, on)
				checks.Refresh()
			}
		},
	)
	checks.HideSeparators = true
	d := dialog.NewCustom("Event filter", "Close", checks, a.u.window)
	d.SetOnClosed(func() {
		a.eventsDialog = nil
		a.events.Close()
		slog.Info("Event filter updated", "value", a.events.Filter())
	})
	kxdialog.AddDialogKeyHandler(d, a.u.window)
	a.eventsDialog = d
	d.Resize(fyne.NewSize(350, 500))
	d.Show()
}
