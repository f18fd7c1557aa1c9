// Package tilecanvas implements the rasterization core of a tile-based
// painting canvas.
//
// # Overview
//
// tilecanvas turns a stream of circular brush dabs into premultiplied-alpha
// pixel updates on an unbounded grid of 64x64 tiles, and converts tiles
// into display-ready 8-bit RGB. It is the numeric heart of a painting
// application: per-pixel fixed-point compositing, a small tile-memory
// cache, and damage aggregation under a nestable begin/end stroke scope.
//
// # Quick Start
//
//	import "github.com/gogpu/tilecanvas"
//
//	store := tilecanvas.NewMemStore()
//	s := tilecanvas.NewSurface(store)
//
//	s.BeginAtomic()
//	s.DrawDab(tilecanvas.NewDab(100, 100, 16, tilecanvas.RGB(1, 0, 0), 1))
//	s.EndAtomic()
//
//	// Composite one tile for display:
//	buf, _ := store.FetchTile(1, 1, true)
//	rgb := make([]uint8, tilecanvas.TileSize*tilecanvas.TileSize*3)
//	tilecanvas.CompositeTileOverRGB8(buf, rgb, tilecanvas.TileSize*3)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Dab, TileStore, Observer, MemStore, Pixmap, Renderer
//   - Internal: tile (grid geometry), cache (stroke tile cache),
//     damage (dirty tracking), blend (fixed-point compositing)
//
// # Data Model
//
// Tiles store 4 channels per pixel as uint16 fixed point in [0, 32768]
// (1.0 == 2^15), premultiplied by alpha. Tile memory is owned by a
// TileStore; the surface only borrows buffers for the duration of one
// atomic stroke scope.
//
// # Concurrency
//
// Surface is single-goroutine by contract; painting from multiple
// goroutines requires external synchronization. Renderer's dirty tracking
// is atomic, so a display goroutine can run alongside the painter as long
// as the TileStore implementation allows it (MemStore does).
package tilecanvas

// Version is the current version of the library.
const Version = "0.2.0"
