package tilecanvas

import (
	"fmt"
	"math"

	"github.com/gogpu/tilecanvas/internal/blend"
	"github.com/gogpu/tilecanvas/internal/cache"
	"github.com/gogpu/tilecanvas/internal/damage"
	"github.com/gogpu/tilecanvas/internal/tile"
)

// Surface rasterizes dabs onto tiles owned by a TileStore and aggregates
// the damage of each stroke.
//
// All painting must happen inside an atomic scope:
//
//	s.BeginAtomic()
//	for _, d := range dabs {
//		s.DrawDab(d)
//	}
//	s.EndAtomic() // observer notified once with the stroke's bounding box
//
// Scopes nest; only the outermost EndAtomic flushes. Surface is not safe
// for concurrent use.
type Surface struct {
	store    TileStore
	observer Observer

	// atomic counts nested scope depth. The damage rectangle and the
	// tile-memory cache are only valid while atomic >= 1.
	atomic int
	damage damage.Rect
	mem    cache.Memory
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithObserver sets the observer notified with per-stroke damage.
// Without an observer, damage is accumulated and discarded on flush.
func WithObserver(o Observer) SurfaceOption {
	return func(s *Surface) {
		s.observer = o
	}
}

// NewSurface creates a surface painting onto tiles fetched from store.
// The store must not be nil.
func NewSurface(store TileStore, opts ...SurfaceOption) *Surface {
	if store == nil {
		panic("tilecanvas: NewSurface with nil store")
	}
	s := &Surface{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BeginAtomic opens an atomic stroke scope. Scopes nest; each BeginAtomic
// must be paired with exactly one EndAtomic.
//
// Entering the outermost scope requires that no damage or cached tile
// memory is left over from a previous scope; a violation means mismatched
// begin/end calls and panics.
func (s *Surface) BeginAtomic() {
	if s.atomic == 0 {
		if !s.damage.IsEmpty() {
			panic("tilecanvas: BeginAtomic with leftover damage, mismatched scope calls")
		}
		if s.mem.Len() != 0 {
			panic("tilecanvas: BeginAtomic with leftover tile cache, mismatched scope calls")
		}
	}
	s.atomic++
}

// EndAtomic closes one atomic scope level. Closing the outermost scope
// drops all cached tile buffers, and, if anything was painted, notifies
// the observer exactly once with the accumulated damage rectangle.
//
// EndAtomic panics if no scope is open.
func (s *Surface) EndAtomic() {
	if s.atomic <= 0 {
		panic("tilecanvas: EndAtomic without matching BeginAtomic")
	}
	s.atomic--
	if s.atomic > 0 {
		return
	}

	s.mem.Reset()
	// Copy out and reset before notifying, so a misbehaving observer
	// cannot corrupt the boundary's own state.
	bbox := s.damage
	s.damage = damage.Rect{}
	if !bbox.IsEmpty() {
		Logger().Debug("stroke flushed",
			"x", bbox.X, "y", bbox.Y, "w", bbox.W, "h", bbox.H)
		if s.observer != nil {
			s.observer.OnDamage(bbox.X, bbox.Y, bbox.W, bbox.H)
		}
	}
}

// InAtomic reports whether an atomic scope is currently open.
func (s *Surface) InAtomic() bool {
	return s.atomic > 0
}

// tileBuffer returns the buffer for tile c, consulting the stroke cache
// before the store. Only writable fetches populate the cache; read-only
// requests alternate with write requests during sampling and would only
// evict useful entries.
func (s *Surface) tileBuffer(c tile.Coord, readonly bool) ([]uint16, error) {
	if buf := s.mem.Lookup(c); buf != nil {
		return buf, nil
	}

	buf, err := s.store.FetchTile(c.TX, c.TY, readonly)
	if err != nil {
		Logger().Warn("tile fetch failed", "tx", c.TX, "ty", c.TY, "err", err)
		return nil, fmt.Errorf("tilecanvas: fetch tile (%d, %d): %w", c.TX, c.TY, err)
	}
	if len(buf) != tile.BufLen {
		panic("tilecanvas: store returned a buffer with the wrong shape")
	}

	if !readonly {
		s.mem.Insert(c, buf)
	}
	return buf, nil
}

// DrawDab applies one dab to every tile it touches and expands the
// stroke's damage rectangle by the dab's bounding box.
//
// It reports whether the surface was modified. Dabs with zero opacity,
// radius below 0.1, or zero hardness are no-ops and report false. A tile
// fetch failure aborts the call with the error and reports true: tiles
// processed before the failure keep their modifications (best-effort, no
// rollback).
//
// DrawDab panics when called outside an atomic scope or with color
// components outside [0, 1].
func (s *Surface) DrawDab(d Dab) (modified bool, err error) {
	if d.Color.R < 0 || d.Color.R > 1 ||
		d.Color.G < 0 || d.Color.G > 1 ||
		d.Color.B < 0 || d.Color.B > 1 {
		panic("tilecanvas: dab color component outside [0, 1]")
	}
	colorR := uint32(d.Color.R * tile.Fix15One)
	colorG := uint32(d.Color.G * tile.Fix15One)
	colorB := uint32(d.Color.B * tile.Fix15One)

	if d.Opaque == 0 {
		return false, nil
	}
	if d.Radius < 0.1 {
		return false, nil
	}
	if d.Hardness == 0 {
		// An infinitely small point, the rest transparent.
		return false, nil
	}

	if s.atomic <= 0 {
		panic("tilecanvas: DrawDab outside atomic scope")
	}

	fringe := d.Radius + 1
	oneOverRadius2 := 1 / (d.Radius * d.Radius)

	cover := tile.CoverageRange(d.X, d.Y, fringe)
	for ty := cover.TY1; ty <= cover.TY2; ty++ {
		for tx := cover.TX1; tx <= cover.TX2; tx++ {
			buf, err := s.tileBuffer(tile.Coord{TX: tx, TY: ty}, false)
			if err != nil {
				return true, err
			}

			// Dab center in tile-local coordinates.
			xc := d.X - float64(tx*tile.Size)
			yc := d.Y - float64(ty*tile.Size)
			x0, x1 := tile.ClipSpan(xc, fringe)
			y0, y1 := tile.ClipSpan(yc, fringe)

			for yp := y0; yp <= y1; yp++ {
				yy := float64(yp) + 0.5 - yc
				yy *= yy
				for xp := x0; xp <= x1; xp++ {
					xx := float64(xp) + 0.5 - xc
					xx *= xx
					rr := (yy + xx) * oneOverRadius2
					if rr > 1 {
						continue
					}

					opa := d.Opaque * falloff(rr, d.Hardness)

					opaA := uint32(opa * tile.Fix15One)
					opaB := uint32(tile.Fix15One) - opaA
					// Eraser scaling applies to the written alpha
					// only, not to how much of the old pixel remains.
					opaA = uint32(float64(opaA) * d.AlphaEraser)

					blend.OverPixel(buf, tile.PixelOffset(xp, yp),
						opaA, opaB, colorR, colorG, colorB)
				}
			}
		}
	}

	bbX := int(math.Floor(d.X - (d.Radius + 1)))
	bbY := int(math.Floor(d.Y - (d.Radius + 1)))
	bbS := int(math.Ceil(2 * (d.Radius + 1)))
	s.damage.ExpandToPoint(bbX, bbY)
	s.damage.ExpandToPoint(bbX+bbS-1, bbY+bbS-1)

	return true, nil
}

// GetColor samples the average color under the dab kernel centered at
// (x, y) with the given radius, using hardness 0.5 and full opacity as
// weights. The returned color is straight (un-premultiplied).
//
// A fully transparent sample returns the conspicuous debug color
// (0, 1, 0, 0) rather than silently producing black.
//
// GetColor panics if radius is below 0.1. A tile fetch failure aborts the
// call with the error.
func (s *Surface) GetColor(x, y, radius float64) (RGBA, error) {
	if radius < 0.1 {
		panic("tilecanvas: sampling radius below minimum 0.1")
	}
	const hardness = 0.5
	const opaque = 1.0

	fringe := radius + 1
	oneOverRadius2 := 1 / (radius * radius)

	var sumR, sumG, sumB, sumA, sumWeight float64

	cover := tile.CoverageRange(x, y, fringe)
	for ty := cover.TY1; ty <= cover.TY2; ty++ {
		for tx := cover.TX1; tx <= cover.TX2; tx++ {
			buf, err := s.tileBuffer(tile.Coord{TX: tx, TY: ty}, true)
			if err != nil {
				return RGBA{}, err
			}

			xc := x - float64(tx*tile.Size)
			yc := y - float64(ty*tile.Size)
			x0, x1 := tile.ClipSpan(xc, fringe)
			y0, y1 := tile.ClipSpan(yc, fringe)

			for yp := y0; yp <= y1; yp++ {
				yy := float64(yp) + 0.5 - yc
				yy *= yy
				for xp := x0; xp <= x1; xp++ {
					xx := float64(xp) + 0.5 - xc
					xx *= xx
					rr := (yy + xx) * oneOverRadius2
					if rr > 1 {
						continue
					}

					opa := opaque * falloff(rr, hardness)

					// Channels are premultiplied; colors stay
					// weighted by their alpha until the final
					// division below.
					idx := tile.PixelOffset(xp, yp)
					sumWeight += opa
					sumR += opa * float64(buf[idx+0]) / tile.Fix15One
					sumG += opa * float64(buf[idx+1]) / tile.Fix15One
					sumB += opa * float64(buf[idx+2]) / tile.Fix15One
					sumA += opa * float64(buf[idx+3]) / tile.Fix15One
				}
			}
		}
	}

	if sumWeight <= 0 {
		// The kernel always covers at least one pixel center for any
		// radius >= 0.1, so this cannot happen in correct usage.
		panic("tilecanvas: color sample accumulated zero weight")
	}
	sumR /= sumWeight
	sumG /= sumWeight
	sumB /= sumWeight
	sumA /= sumWeight

	out := RGBA{A: sumA}
	if sumA > 0 {
		out.R = sumR / sumA
		out.G = sumG / sumA
		out.B = sumB / sumA
	} else {
		// All transparent; make the meaningless color ugly so bugs
		// are visible.
		out.R, out.G, out.B = 0, 1, 0
	}
	return out, nil
}

// GetAlpha samples the average alpha under the dab kernel centered at
// (x, y). It is exactly the alpha component of GetColor.
func (s *Surface) GetAlpha(x, y, radius float64) (float64, error) {
	c, err := s.GetColor(x, y, radius)
	if err != nil {
		return 0, err
	}
	return c.A, nil
}

// falloff evaluates the two-segment radial opacity profile at rr, the
// squared distance from the dab center divided by the squared radius.
// For hardness below 1 the profile is flatter near the center and ramps
// linearly to zero at rr == 1.
func falloff(rr, hardness float64) float64 {
	if hardness >= 1 {
		return 1
	}
	if rr < hardness {
		return rr + 1 - rr/hardness
	}
	return hardness / (hardness - 1) * (rr - 1)
}
