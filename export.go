package memopad

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// Export failure kinds. All export failures are recoverable: the
// drawing session continues unaffected, and a partially-written file
// is left in place.
var (
	// ErrStorageUnavailable means the destination directory could
	// not be created or is not a directory.
	ErrStorageUnavailable = errors.New("memopad: export directory unavailable")

	// ErrIO means the output file could not be opened, written, or
	// closed.
	ErrIO = errors.New("memopad: export write failed")

	// ErrEncode means image encoding failed.
	ErrEncode = errors.New("memopad: image encode failed")
)

const (
	// nameAttempts caps the timestamp-collision retry loop. The
	// original kept retrying on wall clock alone; the cap plus the
	// unique-suffix fallback gives a hard termination guarantee.
	nameAttempts = 1000

	nameRetryDelay = 10 * time.Millisecond
)

// Exporter writes flattened drawings into a destination directory,
// created on demand. Files are named image-<unixMillis>.<ext>; on a
// name collision the exporter waits briefly and regenerates, falling
// back to a unique suffix if the clock never moves.
//
// The zero value is not usable; construct with NewExporter.
type Exporter struct {
	// Dir is the destination directory.
	Dir string

	// now and sleep are swappable for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewExporter creates an exporter writing under dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{
		Dir:   dir,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// ExportPNG encodes img as PNG into a freshly named file and returns
// the written path. img is not mutated.
func (e *Exporter) ExportPNG(img image.Image) (string, error) {
	if err := e.prepareDir(); err != nil {
		return "", err
	}
	path := e.newImagePath("png")

	f, err := os.Create(path)
	if err != nil {
		Logger().Warn("export open failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		Logger().Warn("export encode failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		Logger().Warn("export close failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	Logger().Debug("exported png", "path", path)
	return path, nil
}

// ExportPDF embeds img in a single-page PDF sized to fit the page and
// returns the written path. img is not mutated.
func (e *Exporter) ExportPDF(img image.Image) (string, error) {
	if err := e.prepareDir(); err != nil {
		return "", err
	}
	path := e.newImagePath("pdf")

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.RegisterImageOptionsReader("drawing", gofpdf.ImageOptions{ImageType: "PNG"}, &buf)

	pageW, pageH := doc.GetPageSize()
	const margin = 10.0
	bounds := img.Bounds()
	w := pageW - 2*margin
	h := w * float64(bounds.Dy()) / float64(bounds.Dx())
	if limit := pageH - 2*margin; h > limit {
		w, h = w*limit/h, limit
	}
	doc.ImageOptions("drawing", margin, margin, w, h, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := doc.OutputFileAndClose(path); err != nil {
		Logger().Warn("export pdf failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	Logger().Debug("exported pdf", "path", path)
	return path, nil
}

// prepareDir creates the destination directory on demand and verifies
// it is a directory.
func (e *Exporter) prepareDir() error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	info, err := os.Stat(e.Dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: not a directory: %s", ErrStorageUnavailable, e.Dir)
	}
	return nil
}

// newImagePath picks a destination file name that does not yet exist.
func (e *Exporter) newImagePath(ext string) string {
	for attempt := 0; attempt < nameAttempts; attempt++ {
		if attempt > 0 {
			e.sleep(nameRetryDelay)
		}
		path := filepath.Join(e.Dir, fmt.Sprintf("image-%d.%s", e.now().UnixMilli(), ext))
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path
		}
	}
	// The clock never advanced past the collisions; a random suffix
	// guarantees uniqueness.
	return filepath.Join(e.Dir, fmt.Sprintf("image-%d-%s.%s", e.now().UnixMilli(), uuid.NewString(), ext))
}

// ExportResult is the outcome of an asynchronous export.
type ExportResult struct {
	Path string
	Err  error
}

// ExportPNG flattens the surface and writes it through the exporter.
func (s *Surface) ExportPNG(e *Exporter) (string, error) {
	return e.ExportPNG(s.Snapshot())
}

// ExportPDF flattens the surface and writes it through the exporter.
func (s *Surface) ExportPDF(e *Exporter) (string, error) {
	return e.ExportPDF(s.Snapshot())
}

// ExportPNGAsync snapshots the surface on the calling goroutine, then
// encodes and writes on a background goroutine, so file I/O never
// blocks input handling. Because the snapshot is taken up front, a
// stroke committed while the export runs cannot race the flatten and
// encode. The result is delivered on the returned channel, which is
// buffered and closed after the single send.
func (s *Surface) ExportPNGAsync(e *Exporter) <-chan ExportResult {
	snap := s.Snapshot()
	ch := make(chan ExportResult, 1)
	go func() {
		defer close(ch)
		path, err := e.ExportPNG(snap)
		ch <- ExportResult{Path: path, Err: err}
	}()
	return ch
}
