package tilecanvas

import "github.com/gogpu/tilecanvas/internal/tile"

// Tile geometry, re-exported for TileStore implementers and display code.
const (
	// TileSize is the width and height of a tile in pixels.
	TileSize = tile.Size

	// TileBufLen is the length of a tile buffer in uint16 values
	// (TileSize * TileSize * 4 channels).
	TileBufLen = tile.BufLen

	// Fix15One is the fixed-point representation of 1.0 in tile
	// channels (2^15). Channel values are premultiplied alpha in
	// [0, Fix15One].
	Fix15One = tile.Fix15One
)

// TileStore owns tile memory and hands out buffers by tile coordinate.
//
// FetchTile returns the buffer for tile (tx, ty): exactly TileBufLen
// uint16 values, row-major, 4 channels (R, G, B, A) per pixel. The buffer
// must remain valid for at least the duration of the current atomic stroke
// scope. When readonly is true the caller promises not to mutate the
// buffer; the store may return shared memory.
//
// A FetchTile error aborts the current surface operation; the surface may
// already have modified other tiles (best-effort, no rollback).
//
// FetchTile may be called re-entrantly only if the store itself never
// calls back into the surface; re-entrant painting is unsupported.
type TileStore interface {
	FetchTile(tx, ty int, readonly bool) ([]uint16, error)
}

// Observer is notified once per outermost atomic stroke scope with the
// bounding rectangle of all pixels modified during the scope, in
// world-space pixels. It is not called when nothing was modified.
//
// The surface's own bookkeeping is fully reset before OnDamage runs, so a
// panic inside the observer cannot corrupt the stroke boundary. Calling
// back into the surface from OnDamage is unsupported.
type Observer interface {
	OnDamage(x, y, w, h int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(x, y, w, h int)

// OnDamage implements Observer.
func (f ObserverFunc) OnDamage(x, y, w, h int) { f(x, y, w, h) }
