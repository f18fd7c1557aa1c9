package tilecanvas

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/tilecanvas/internal/damage"
	"github.com/gogpu/tilecanvas/internal/tile"
)

// Renderer keeps an 8-bit RGB view of a tile-aligned canvas viewport up to
// date, recompositing only the tiles touched since the last Render.
//
// Wire it to a Surface as the observer:
//
//	r := tilecanvas.NewRenderer(store, 0, 0, 8, 6, tilecanvas.RGB(1, 1, 1))
//	s := tilecanvas.NewSurface(store, tilecanvas.WithObserver(r))
//
// Damage marking is atomic, so Render may run on a display goroutine while
// strokes are painted, at the usual cost of possibly compositing a stroke
// that is still in progress.
type Renderer struct {
	store      TileStore
	origin     tile.Coord // top-left tile of the viewport
	background RGBA
	pixmap     *Pixmap
	dirty      *damage.TileBitmap
}

// NewRenderer creates a renderer for the viewport of tilesX by tilesY
// tiles whose top-left tile is (originTX, originTY). Tiles are composited
// over the background color. Panics if either dimension is not positive.
func NewRenderer(store TileStore, originTX, originTY, tilesX, tilesY int, background RGBA) *Renderer {
	if store == nil {
		panic("tilecanvas: NewRenderer with nil store")
	}
	dirty := damage.NewTileBitmap(tilesX, tilesY)
	if dirty == nil {
		panic("tilecanvas: NewRenderer with non-positive viewport size")
	}
	dirty.MarkAll()
	return &Renderer{
		store:      store,
		origin:     tile.Coord{TX: originTX, TY: originTY},
		background: background,
		pixmap:     NewPixmap(tilesX*TileSize, tilesY*TileSize),
		dirty:      dirty,
	}
}

// Pixmap returns the renderer's display buffer. It is only as fresh as the
// last Render call.
func (r *Renderer) Pixmap() *Pixmap {
	return r.pixmap
}

// OnDamage implements Observer: it marks the tiles intersecting the
// world-space rectangle for recompositing on the next Render.
func (r *Renderer) OnDamage(x, y, w, h int) {
	ox, oy := r.origin.Origin()
	r.dirty.MarkRect(damage.Rect{X: x - ox, Y: y - oy, W: w, H: h})
}

// Invalidate marks the whole viewport for recompositing.
func (r *Renderer) Invalidate() {
	r.dirty.MarkAll()
}

// Render recomposites every dirty tile into the pixmap: the tile region is
// reset to the background color, then the store's tile is composited over
// it. Unpainted tiles render as pure background.
//
// On a fetch failure the failing tile stays marked dirty and the first
// error is returned; other dirty tiles are still rendered.
func (r *Renderer) Render() error {
	var firstErr error
	r.dirty.Drain(func(tx, ty int) {
		buf, err := r.store.FetchTile(r.origin.TX+tx, r.origin.TY+ty, true)
		if err != nil {
			r.dirty.Mark(tx, ty)
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		r.fillTileBackground(tx, ty)
		dst, ok := r.pixmap.TileRegion(tx, ty)
		if !ok {
			return
		}
		CompositeTileOverRGB8(buf, dst, r.pixmap.Stride())
	})
	return firstErr
}

// RenderScaled refreshes the pixmap and scales it into dst with bilinear
// filtering, for zoomed previews and thumbnails.
func (r *Renderer) RenderScaled(dst *image.RGBA) error {
	if err := r.Render(); err != nil {
		return err
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), r.pixmap, r.pixmap.Bounds(), draw.Src, nil)
	return nil
}

// fillTileBackground resets one tile region of the pixmap to the
// background color.
func (r *Renderer) fillTileBackground(tx, ty int) {
	bg := [3]uint8{
		uint8(clamp255(r.background.R * 255)),
		uint8(clamp255(r.background.G * 255)),
		uint8(clamp255(r.background.B * 255)),
	}
	x0, y0 := tx*TileSize, ty*TileSize
	for y := y0; y < y0+TileSize; y++ {
		row := r.pixmap.pix[y*r.pixmap.stride:]
		for x := x0; x < x0+TileSize; x++ {
			row[x*3+0] = bg[0]
			row[x*3+1] = bg[1]
			row[x*3+2] = bg[2]
		}
	}
}
