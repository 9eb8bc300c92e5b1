package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type headerDef struct {
	label string
	width float32
}

func (h headerDef) Width() float32 {
	if h.width > 0 {
		return h.width
	}
	x := widget.NewLabel(h.label)
	return x.MinSize().Width
}

// makeDataTable returns a table for showing rows of text.
func makeDataTable(
	headers []headerDef,
	rowCount func() int,
	makeCell func(row, col int) string,
	onSelected func(row int),
) *widget.Table {
	t := widget.NewTable(
		func() (rows int, cols int) {
			return rowCount(), len(headers)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("Template")
			l.Truncation = fyne.TextTruncateClip
			return l
		},
		func(tci widget.TableCellID, co fyne.CanvasObject) {
			cell := co.(*widget.Label)
			if tci.Row >= rowCount() || tci.Row < 0 {
				cell.SetText("")
				return
			}
			cell.SetText(makeCell(tci.Row, tci.Col))
		},
	)
	t.ShowHeaderRow = true
	t.StickyColumnCount = 1
	t.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("Template", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	t.UpdateHeader = func(tci widget.TableCellID, co fyne.CanvasObject) {
		if tci.Col < 0 || tci.Col >= len(headers) {
			return
		}
		co.(*widget.Label).SetText(headers[tci.Col].label)
	}
	t.OnSelected = func(tci widget.TableCellID) {
		if onSelected == nil || tci.Row >= rowCount() || tci.Row < 0 {
			return
		}
		onSelected(tci.Row)
	}
	for i, h := range headers {
		t.SetColumnWidth(i, h.Width()+theme.Padding())
	}
	return t
}
