// Package blend implements the fixed-point compositing operators of the
// tile canvas.
//
// All operations work on premultiplied alpha. Tile channels are unsigned
// 16-bit values in [0, tile.Fix15One] (1.0 == 2^15); intermediate products
// fit uint32. Division by 2^15 truncates, matching the painting core's
// accumulation behavior exactly so that repeated strokes stay reproducible.
//
// Reference: Porter-Duff, "Compositing Digital Images" (1984); only the
// source-over operator is needed here.
package blend

import "github.com/gogpu/tilecanvas/internal/tile"

// OverPixel composites one premultiplied source pixel over the tile buffer
// pixel at index idx (the offset of the R channel).
//
//	resultAlpha = topAlpha + (1 - topAlpha) * bottomAlpha
//	resultColor = topColor + (1 - topAlpha) * bottomColor
//
// opaA is the top alpha in fixed point, already scaled by any eraser
// multiplier; opaB is tile.Fix15One minus the unscaled top alpha. r, g, b
// are the top color channels in [0, tile.Fix15One], not yet multiplied by
// opaA (premultiplication happens here).
func OverPixel(buf []uint16, idx int, opaA, opaB, r, g, b uint32) {
	buf[idx+3] = uint16(opaA + opaB*uint32(buf[idx+3])/tile.Fix15One)
	buf[idx+0] = uint16((opaA*r + opaB*uint32(buf[idx+0])) / tile.Fix15One)
	buf[idx+1] = uint16((opaA*g + opaB*uint32(buf[idx+1])) / tile.Fix15One)
	buf[idx+2] = uint16((opaA*b + opaB*uint32(buf[idx+2])) / tile.Fix15One)
}

// TileOverRGB8 composites a premultiplied 16-bit tile over an 8-bit RGB
// destination, treating the destination as fully opaque. dst holds
// tile.Size rows of tile.Size 3-byte pixels, rows dstStride bytes apart.
//
// The resulting alpha is 1 everywhere and is not stored.
func TileOverRGB8(src []uint16, dst []uint8, dstStride int) {
	if len(src) != tile.BufLen {
		panic("blend: source is not a full tile buffer")
	}
	if dstStride < tile.Size*3 || len(dst) < (tile.Size-1)*dstStride+tile.Size*3 {
		panic("blend: destination buffer too small for its stride")
	}

	si := 0
	for y := 0; y < tile.Size; y++ {
		row := dst[y*dstStride:]
		di := 0
		for x := 0; x < tile.Size; x++ {
			oneMinusTopAlpha := uint32(tile.Fix15One - src[si+3])
			row[di+0] = uint8((uint32(src[si+0])*255 + oneMinusTopAlpha*uint32(row[di+0])) / tile.Fix15One)
			row[di+1] = uint8((uint32(src[si+1])*255 + oneMinusTopAlpha*uint32(row[di+1])) / tile.Fix15One)
			row[di+2] = uint8((uint32(src[si+2])*255 + oneMinusTopAlpha*uint32(row[di+2])) / tile.Fix15One)
			si += 4
			di += 3
		}
	}
}
