// Package tile provides the geometry of the canvas tile grid.
//
// The canvas is an unbounded grid of 64x64 pixel tiles. Each tile stores
// 4 channels (R, G, B, A) per pixel as unsigned 16-bit fixed-point values
// in [0, Fix15One], premultiplied by alpha. Tile (tx, ty) covers the
// world-space region [tx*64, (tx+1)*64) x [ty*64, (ty+1)*64).
//
// This package is pure coordinate and buffer-offset math; it never
// allocates or owns tile memory.
package tile

import "math"

const (
	// Size is the width and height of a tile in pixels.
	Size = 64

	// Channels is the number of channels per pixel (R, G, B, A).
	Channels = 4

	// Pixels is the total number of pixels in a tile.
	Pixels = Size * Size

	// BufLen is the length of a tile buffer in uint16 values.
	BufLen = Pixels * Channels

	// Fix15One is the fixed-point representation of 1.0.
	// Channel values are premultiplied alpha scaled by 2^15.
	Fix15One = 1 << 15
)

// Coord identifies a tile on the grid.
type Coord struct {
	TX, TY int
}

// CoordAt returns the coordinate of the tile containing the world-space
// pixel (x, y).
func CoordAt(x, y int) Coord {
	return Coord{TX: floorDiv(x, Size), TY: floorDiv(y, Size)}
}

// Range is an inclusive range of tile coordinates.
type Range struct {
	TX1, TY1 int
	TX2, TY2 int
}

// CoverageRange returns the inclusive range of tiles touched by the square
// [x-fringe, x+fringe] x [y-fringe, y+fringe] around a world-space point.
func CoverageRange(x, y, fringe float64) Range {
	return Range{
		TX1: int(math.Floor(math.Floor(x-fringe) / Size)),
		TY1: int(math.Floor(math.Floor(y-fringe) / Size)),
		TX2: int(math.Floor(math.Floor(x+fringe) / Size)),
		TY2: int(math.Floor(math.Floor(y+fringe) / Size)),
	}
}

// NumTiles returns the number of tiles in the range.
func (r Range) NumTiles() int {
	return (r.TX2 - r.TX1 + 1) * (r.TY2 - r.TY1 + 1)
}

// ClipSpan returns the inclusive tile-local pixel range [p0, p1] covered by
// [center-fringe, center+fringe], clipped to [0, Size-1]. center is in
// tile-local coordinates. The range is empty if p0 > p1.
func ClipSpan(center, fringe float64) (p0, p1 int) {
	p0 = int(math.Floor(center - fringe))
	p1 = int(math.Ceil(center + fringe))
	if p0 < 0 {
		p0 = 0
	}
	if p1 > Size-1 {
		p1 = Size - 1
	}
	return p0, p1
}

// PixelOffset returns the index into a tile buffer of the first channel of
// the tile-local pixel (px, py). Both must be in [0, Size).
func PixelOffset(px, py int) int {
	return (py*Size + px) * Channels
}

// Origin returns the world-space pixel of the tile's top-left corner.
func (c Coord) Origin() (x, y int) {
	return c.TX * Size, c.TY * Size
}

// floorDiv divides a by b rounding toward negative infinity. b must be
// positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
