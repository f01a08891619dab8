// Command memopad is a desktop freehand drawing pad.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	memopad "github.com/abhimir/MemoPad"
)

const appName = "MemoPad"

func main() {
	var (
		width   = flag.Int("width", 1024, "window width")
		height  = flag.Int("height", 768, "window height")
		dir     = flag.String("dir", "", "export directory (default ~/"+appName+")")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		memopad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	exportDir := *dir
	if exportDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		exportDir = filepath.Join(home, appName)
	}

	a := app.New()
	window := a.NewWindow(appName)
	window.Resize(fyne.NewSize(float32(*width), float32(*height)))

	surface := memopad.NewSurface(*width, *height)
	exporter := memopad.NewExporter(exportDir)

	pad := newPadWidget(surface)
	toolbar := newToolbar(surface, pad, exporter)

	window.SetContent(container.NewBorder(toolbar, nil, nil, nil, pad))
	window.ShowAndRun()
}
