// Package ui implements the graphical user interface of the app.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/maniartech/signals"
	"golang.org/x/sync/errgroup"

	"github.com/edbuddy/edbuddy/internal/app"
	"github.com/edbuddy/edbuddy/internal/app/history"
	"github.com/edbuddy/edbuddy/internal/app/storage"
	"github.com/edbuddy/edbuddy/internal/app/targetservice"
)

// Setting keys
const (
	settingWindowHeight = "WindowHeight"
	settingWindowWidth  = "WindowWidth"
)

const (
	windowHeightDefault = 600
	windowWidthDefault  = 1000
)

// UI is the user interface of the app.
type UI struct {
	targetChanged signals.Signal[app.Target]

	app              fyne.App
	ledger           *ledger
	settings         app.SettingsStore
	st               *storage.Storage
	startupCompleted atomic.Bool
	status           *widget.Label
	targetBar        *targetBar
	travelHistory    *travelHistory
	ts               *targetservice.TargetService
	window           fyne.Window
}

// Params are the parameters for creating a new UI.
type Params struct {
	App      fyne.App
	Settings app.SettingsStore
	Storage  *storage.Storage
}

// New returns a new UI.
func New(arg Params) *UI {
	u := &UI{
		app:           arg.App,
		settings:      arg.Settings,
		st:            arg.Storage,
		status:        widget.NewLabel(""),
		targetChanged: signals.NewSync[app.Target](),
		ts:            targetservice.New(arg.Settings),
	}
	u.window = u.app.NewWindow(u.appName())
	u.travelHistory = newTravelHistory(u)
	u.ledger = newLedger(u)
	u.targetBar = newTargetBar(u)

	tabs := container.NewAppTabs(
		container.NewTabItem("Travel History", u.travelHistory),
		container.NewTabItem("Ledger", u.ledger),
	)
	c := container.NewBorder(u.targetBar, u.status, nil, nil, tabs)
	u.window.SetContent(fynetooltip.AddWindowToolTipLayer(c, u.window.Canvas()))
	u.window.Resize(fyne.NewSize(
		float32(u.settings.FloatWithFallback(settingWindowWidth, windowWidthDefault)),
		float32(u.settings.FloatWithFallback(settingWindowHeight, windowHeightDefault)),
	))
	u.window.SetMaster()
	u.window.SetCloseIntercept(func() {
		s := u.window.Canvas().Size()
		u.settings.SetFloat(settingWindowWidth, float64(s.Width))
		u.settings.SetFloat(settingWindowHeight, float64(s.Height))
		fynetooltip.DestroyWindowToolTipLayer(u.window.Canvas())
		u.window.Close()
	})
	u.app.Lifecycle().SetOnStarted(func() {
		slog.Info("App started")
		go func() {
			u.reload(context.Background())
			u.startupCompleted.Store(true)
		}()
	})
	return u
}

func (u *UI) appName() string {
	info := u.app.Metadata()
	if info.Name == "" {
		return "ED Buddy"
	}
	return info.Name
}

// App returns the Fyne app.
func (u *UI) App() fyne.App {
	return u.app
}

// MainWindow returns the main window.
func (u *UI) MainWindow() fyne.Window {
	return u.window
}

// IsStartupCompleted reports whether the initial data was loaded.
func (u *UI) IsStartupCompleted() bool {
	return u.startupCompleted.Load()
}

// ShowAndRun shows the main window and runs the app. Blocks until the app exits.
func (u *UI) ShowAndRun() {
	u.window.ShowAndRun()
}

// reload loads all data and reports errors in the status bar.
func (u *UI) reload(ctx context.Context) {
	err := u.update(ctx)
	fyne.Do(func() {
		if err != nil {
			slog.Error("Failed to load data", "error", err)
			u.status.SetText(humanizeError(err))
			u.status.Importance = widget.DangerImportance
		} else {
			u.status.SetText("")
			u.status.Importance = widget.MediumImportance
		}
		u.status.Refresh()
	})
}

// update loads the travel history and the ledger concurrently and shows them.
func (u *UI) update(ctx context.Context) error {
	var hl *history.List
	var txs []*app.LedgerTransaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hl, err = history.Load(gctx, u.st)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = u.st.ListLedgerTransactions(gctx)
		if err != nil {
			return fmt.Errorf("load ledger: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fyne.Do(func() {
		u.travelHistory.set(hl)
		u.ledger.set(txs)
	})
	return nil
}
