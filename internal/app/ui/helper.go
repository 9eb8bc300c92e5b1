package ui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/edbuddy/edbuddy/internal/app"
)

func makeTopLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Wrapping = fyne.TextWrapWord
	return l
}

// formatCoordinate returns a formatted coordinate. NaN is shown as "?".
func formatCoordinate(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	return humanize.FormatFloat(app.FloatFormat, v)
}

func formatPosition(p app.Position) string {
	return fmt.Sprintf("%s / %s / %s", formatCoordinate(p.X), formatCoordinate(p.Y), formatCoordinate(p.Z))
}

// formatCredits returns a formatted amount of credits.
func formatCredits(v float64) string {
	return humanize.FormatFloat(app.FloatFormat, v) + " cr"
}

// humanizeError returns a user friendly description of an error.
func humanizeError(err error) string {
	return fmt.Sprintf("An error occurred: %s", err)
}
