package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxdialog "github.com/ErikKalkoken/fyne-kx/dialog"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/edbuddy/edbuddy/internal/app"
)

// targetBar shows the current target and allows clearing it.
type targetBar struct {
	widget.BaseWidget

	clear *ttwidget.Button
	label *widget.Label
	u     *UI
}

func newTargetBar(u *UI) *targetBar {
	a := &targetBar{
		label: widget.NewLabel(""),
		u:     u,
	}
	a.ExtendBaseWidget(a)
	a.clear = ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		a.confirmClear()
	})
	a.clear.SetToolTip("Clear current target")
	a.u.targetChanged.AddListener(func(_ context.Context, t app.Target) {
		a.set(t)
	})
	a.set(a.u.ts.Target())
	return a
}

func (a *targetBar) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(nil, nil, nil, a.clear, a.label)
	return widget.NewSimpleRenderer(c)
}

func (a *targetBar) set(t app.Target) {
	if !t.IsSet() {
		a.label.SetText("No target")
		a.label.Importance = widget.LowImportance
		a.label.Refresh()
		a.clear.Disable()
		return
	}
	a.label.SetText(fmt.Sprintf(
		"Target: %s (%s) at %s",
		t.Name,
		app.Titler.String(t.Kind.String()),
		formatPosition(t.Position),
	))
	a.label.Importance = widget.MediumImportance
	a.label.Refresh()
	a.clear.Enable()
}

func (a *targetBar) confirmClear() {
	d := dialog.NewConfirm(
		"Clear target",
		"Are you sure you want to clear the current target?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			a.u.ts.Clear()
			a.u.targetChanged.Emit(context.Background(), a.u.ts.Target())
		},
		a.u.window,
	)
	kxdialog.AddDialogKeyHandler(d, a.u.window)
	d.Show()
}
