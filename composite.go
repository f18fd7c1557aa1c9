package tilecanvas

import "github.com/gogpu/tilecanvas/internal/blend"

// CompositeTileOverRGB8 composites one premultiplied 16-bit tile over an
// 8-bit RGB destination, treating the destination as fully opaque.
//
// src must hold exactly TileBufLen uint16 values. dst must hold TileSize
// rows of TileSize packed 3-byte RGB pixels, rows dstStride bytes apart;
// dstStride must be at least TileSize*3. Malformed buffer shapes panic.
//
// This is the bridge from the internal high-precision representation to
// display and export imagery; it is stateless and needs no atomic scope.
func CompositeTileOverRGB8(src []uint16, dst []uint8, dstStride int) {
	blend.TileOverRGB8(src, dst, dstStride)
}
