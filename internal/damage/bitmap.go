package damage

import (
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/tilecanvas/internal/tile"
)

// TileBitmap tracks which tiles of a fixed viewport need recompositing.
//
// One bit per tile, packed into uint64 words. All methods are safe for
// concurrent use without external synchronization, so a painting goroutine
// may mark damage while a display goroutine drains it.
type TileBitmap struct {
	// words is the atomic bitmap; bit index = ty*tilesX + tx.
	words []atomic.Uint64

	tilesX int
	tilesY int
}

// NewTileBitmap creates a bitmap for a viewport of tilesX by tilesY tiles.
// All tiles start clean. Returns nil if either dimension is not positive.
func NewTileBitmap(tilesX, tilesY int) *TileBitmap {
	if tilesX <= 0 || tilesY <= 0 {
		return nil
	}
	total := tilesX * tilesY
	return &TileBitmap{
		words:  make([]atomic.Uint64, (total+63)/64),
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// Mark marks a single tile dirty. Out-of-range coordinates are ignored.
func (b *TileBitmap) Mark(tx, ty int) {
	if tx < 0 || tx >= b.tilesX || ty < 0 || ty >= b.tilesY {
		return
	}
	idx := ty*b.tilesX + tx
	b.words[idx/64].Or(1 << (idx & 63))
}

// MarkRect marks every tile intersecting the pixel rectangle r dirty.
// The rectangle is in viewport pixel space, (0, 0) at the top-left tile.
func (b *TileBitmap) MarkRect(r Rect) {
	if r.IsEmpty() || r.H <= 0 {
		return
	}
	tx1 := max(tile.CoordAt(r.X, r.Y).TX, 0)
	ty1 := max(tile.CoordAt(r.X, r.Y).TY, 0)
	tx2 := min(tile.CoordAt(r.X+r.W-1, r.Y+r.H-1).TX, b.tilesX-1)
	ty2 := min(tile.CoordAt(r.X+r.W-1, r.Y+r.H-1).TY, b.tilesY-1)
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			b.Mark(tx, ty)
		}
	}
}

// MarkAll marks every tile dirty.
func (b *TileBitmap) MarkAll() {
	total := b.tilesX * b.tilesY
	for i := range b.words {
		n := min(total-i*64, 64)
		if n == 64 {
			b.words[i].Store(^uint64(0))
		} else {
			b.words[i].Store((uint64(1) << n) - 1)
		}
	}
}

// IsDirty reports whether the tile at (tx, ty) is marked.
// Out-of-range coordinates report false.
func (b *TileBitmap) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= b.tilesX || ty < 0 || ty >= b.tilesY {
		return false
	}
	idx := ty*b.tilesX + tx
	return b.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// Count returns the number of dirty tiles.
func (b *TileBitmap) Count() int {
	n := 0
	for i := range b.words {
		n += bits.OnesCount64(b.words[i].Load())
	}
	return n
}

// Drain atomically clears the bitmap, calling fn for each tile that was
// dirty, in row-major order word by word.
func (b *TileBitmap) Drain(fn func(tx, ty int)) {
	total := b.tilesX * b.tilesY
	for wordIdx := range b.words {
		word := b.words[wordIdx].Swap(0)
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			word &^= 1 << bit
			idx := wordIdx*64 + bit
			if idx >= total {
				break
			}
			fn(idx%b.tilesX, idx/b.tilesX)
		}
	}
}

// TilesX returns the viewport width in tiles.
func (b *TileBitmap) TilesX() int { return b.tilesX }

// TilesY returns the viewport height in tiles.
func (b *TileBitmap) TilesY() int { return b.tilesY }
