package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	memopad "github.com/abhimir/MemoPad"
)

// palette owns the concrete style option tables and implements
// memopad.StyleListener: the cycler reports the new index, the
// palette returns the value at that index.
type palette struct {
	penColors     []memopad.ARGB
	penColorNames []string
	penSizes      []float64
	penSizeNames  []string
	backgrounds   []memopad.ARGB
	bgNames       []string

	onChange func(kind, name string)
}

func newPalette(onChange func(kind, name string)) *palette {
	return &palette{
		penColors:     []memopad.ARGB{memopad.Black, memopad.Red, memopad.Blue, memopad.Green},
		penColorNames: []string{"Black", "Red", "Blue", "Green"},
		penSizes:      []float64{12, 6, 24},
		penSizeNames:  []string{"Medium", "Fine", "Bold"},
		backgrounds:   []memopad.ARGB{memopad.White, 0xFFFFF8DC, 0xFFDCEEFF},
		bgNames:       []string{"White", "Cream", "Sky"},
		onChange:      onChange,
	}
}

func (p *palette) PenColorChanged(index int) memopad.ARGB {
	p.onChange("pen", p.penColorNames[index])
	return p.penColors[index]
}

func (p *palette) PenSizeChanged(index int) float64 {
	p.onChange("size", p.penSizeNames[index])
	return p.penSizes[index]
}

func (p *palette) BackgroundChanged(index int) memopad.ARGB {
	p.onChange("background", p.bgNames[index])
	return p.backgrounds[index]
}

// newToolbar assembles the style, clear, and export controls.
func newToolbar(surface *memopad.Surface, pad *padWidget, exporter *memopad.Exporter) fyne.CanvasObject {
	status := widget.NewLabel("Ready")

	pal := newPalette(func(kind, name string) {
		status.SetText(fmt.Sprintf("%s: %s", kind, name))
	})
	cycler := memopad.NewStyleCycler(surface, pal,
		len(pal.penColors), len(pal.penSizes), len(pal.backgrounds))
	cycler.ApplyAll()

	penColor := widget.NewButton("Pen Color", func() {
		cycler.NextPenColor()
		pad.Redraw()
	})
	penSize := widget.NewButton("Pen Size", func() {
		cycler.NextPenSize()
		pad.Redraw()
	})
	background := widget.NewButton("Background", func() {
		cycler.NextBackground()
		pad.Redraw()
	})
	clear := widget.NewButton("Clear", func() {
		surface.Clear()
		pad.Redraw()
		status.SetText("Cleared")
	})

	savePNG := widget.NewButton("Save PNG", func() {
		results := surface.ExportPNGAsync(exporter)
		go func() {
			r := <-results
			fyne.Do(func() {
				if r.Err != nil {
					status.SetText(fmt.Sprintf("Save failed: %v", r.Err))
					return
				}
				status.SetText("Saved " + r.Path)
			})
		}()
	})
	savePDF := widget.NewButton("Save PDF", func() {
		// Snapshot on the event loop, write in the background.
		snap := surface.Snapshot()
		go func() {
			path, err := exporter.ExportPDF(snap)
			fyne.Do(func() {
				if err != nil {
					status.SetText(fmt.Sprintf("Save failed: %v", err))
					return
				}
				status.SetText("Saved " + path)
			})
		}()
	})

	return container.NewHBox(
		penColor, penSize, background,
		widget.NewSeparator(),
		clear, savePNG, savePDF,
		layout.NewSpacer(),
		status,
	)
}
