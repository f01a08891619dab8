// Package memopad implements a touch-driven freehand drawing engine.
//
// # Overview
//
// The engine turns discrete, possibly sparse pointer samples into
// smooth vector strokes, commits completed strokes into a persistent
// raster layer, and composites the persistent layer with the stroke in
// progress on every redraw. Two components collaborate:
//
//   - [StrokeTracker] consumes raw samples, drops jitter below a fixed
//     tolerance, and builds a quadratic-smoothed curve.
//   - [Surface] owns the committed layer, background color, and pen;
//     it renders frames, commits finished curves, and exports the
//     flattened drawing.
//
// # Quick Start
//
//	s := memopad.NewSurface(800, 600)
//
//	s.PointerDown(10, 10)
//	s.PointerMove(40, 40, nil)
//	s.PointerUp(80, 40, nil)
//
//	frame := s.Render()
//
//	exp := memopad.NewExporter("/tmp/MemoPad")
//	path, err := s.ExportPNG(exp)
//
// # Style Cycling
//
// The host UI owns the concrete color and size tables; the engine owns
// only three rotating indices. Implement [StyleListener] and drive a
// [StyleCycler] to cycle pen color, pen size, and background.
//
// # Concurrency
//
// The engine is single-threaded by design: one event loop owns pointer
// handling, style mutation, and rendering. Export snapshots the
// drawing first, so [Surface.ExportPNGAsync] can encode and write on a
// background goroutine without racing a concurrent commit.
package memopad
