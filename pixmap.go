package tilecanvas

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is an 8-bit RGB display buffer, the destination of tile
// compositing. Pixels are packed 3 bytes each, rows Stride bytes apart.
// Pixmaps are always fully opaque; alpha is never stored.
type Pixmap struct {
	width  int
	height int
	stride int
	pix    []uint8
}

// NewPixmap creates a pixmap with the given dimensions, filled with black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		stride: width * 3,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the distance in bytes between vertically adjacent pixels.
func (p *Pixmap) Stride() int {
	return p.stride
}

// Pix returns the raw pixel data (packed RGB).
func (p *Pixmap) Pix() []uint8 {
	return p.pix
}

// Clear fills the entire pixmap with a color. The alpha component is
// ignored.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))

	for y := 0; y < p.height; y++ {
		row := p.pix[y*p.stride:]
		for x := 0; x < p.width; x++ {
			row[x*3+0] = r
			row[x*3+1] = g
			row[x*3+2] = b
		}
	}
}

// TileRegion returns the sub-buffer covering the full tile at tile
// coordinate (tx, ty), suitable as the destination of
// CompositeTileOverRGB8 together with the pixmap's stride. It returns
// false when the tile is not fully inside the pixmap.
func (p *Pixmap) TileRegion(tx, ty int) ([]uint8, bool) {
	x, y := tx*TileSize, ty*TileSize
	if x < 0 || y < 0 || x+TileSize > p.width || y+TileSize > p.height {
		return nil, false
	}
	return p.pix[y*p.stride+x*3:], true
}

// ToImage copies the pixmap into a new opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		src := p.pix[y*p.stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < p.width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{A: 0xff}
	}
	i := y*p.stride + x*3
	return color.RGBA{R: p.pix[i], G: p.pix[i+1], B: p.pix[i+2], A: 0xff}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
