package blend

import (
	"testing"

	"github.com/gogpu/tilecanvas/internal/tile"
)

func TestOverPixel_FullOpacityReplaces(t *testing.T) {
	buf := make([]uint16, 8)
	buf[0], buf[1], buf[2], buf[3] = 100, 200, 300, 400

	OverPixel(buf, 0, tile.Fix15One, 0, 32768, 16384, 0)

	want := [4]uint16{32768, 16384, 0, 32768}
	got := [4]uint16{buf[0], buf[1], buf[2], buf[3]}
	if got != want {
		t.Errorf("OverPixel full opacity = %v, want %v", got, want)
	}
}

func TestOverPixel_ZeroOpacityKeepsDestination(t *testing.T) {
	buf := []uint16{100, 200, 300, 400}

	OverPixel(buf, 0, 0, tile.Fix15One, 32768, 32768, 32768)

	want := [4]uint16{100, 200, 300, 400}
	got := [4]uint16{buf[0], buf[1], buf[2], buf[3]}
	if got != want {
		t.Errorf("OverPixel zero opacity = %v, want %v", got, want)
	}
}

func TestOverPixel_HalfOverTransparent(t *testing.T) {
	buf := make([]uint16, 4)
	half := uint32(tile.Fix15One / 2)

	OverPixel(buf, 0, half, tile.Fix15One-half, 32768, 0, 32768)

	// Premultiplied: channels carry half the color, alpha is half.
	want := [4]uint16{16384, 0, 16384, 16384}
	got := [4]uint16{buf[0], buf[1], buf[2], buf[3]}
	if got != want {
		t.Errorf("OverPixel half opacity = %v, want %v", got, want)
	}
}

func TestTileOverRGB8_OpaqueSourceWins(t *testing.T) {
	src := make([]uint16, tile.BufLen)
	for i := 0; i < tile.BufLen; i += 4 {
		src[i+0] = 32768 // full red
		src[i+1] = 8192
		src[i+2] = 0
		src[i+3] = 32768
	}
	dst := make([]uint8, tile.Size*tile.Size*3)
	for i := range dst {
		dst[i] = 77 // prior content must not matter
	}

	TileOverRGB8(src, dst, tile.Size*3)

	for i := 0; i < len(dst); i += 3 {
		if dst[i+0] != 255 || dst[i+1] != 63 || dst[i+2] != 0 {
			t.Fatalf("pixel %d = (%d, %d, %d), want (255, 63, 0)",
				i/3, dst[i+0], dst[i+1], dst[i+2])
		}
	}
}

func TestTileOverRGB8_TransparentSourceKeepsDestination(t *testing.T) {
	src := make([]uint16, tile.BufLen)
	dst := make([]uint8, tile.Size*tile.Size*3)
	for i := range dst {
		dst[i] = uint8(i % 251)
	}
	want := make([]uint8, len(dst))
	copy(want, dst)

	TileOverRGB8(src, dst, tile.Size*3)

	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d (unchanged)", i, dst[i], want[i])
		}
	}
}

func TestTileOverRGB8_HonorsStride(t *testing.T) {
	// Destination is a 64x64 window inside a wider 200px image.
	const stride = 200 * 3
	src := make([]uint16, tile.BufLen)
	for i := 0; i < tile.BufLen; i += 4 {
		src[i+1] = 32768 // full green
		src[i+3] = 32768
	}
	dst := make([]uint8, (tile.Size-1)*stride+tile.Size*3)

	TileOverRGB8(src, dst, stride)

	// Inside the window: green. Just past the window on row 0: untouched.
	if dst[0] != 0 || dst[1] != 255 || dst[2] != 0 {
		t.Errorf("window pixel = (%d, %d, %d), want (0, 255, 0)", dst[0], dst[1], dst[2])
	}
	if dst[tile.Size*3] != 0 {
		t.Errorf("pixel past window modified: %d", dst[tile.Size*3])
	}
	last := (tile.Size-1)*stride + (tile.Size-1)*3
	if dst[last+1] != 255 {
		t.Errorf("last window pixel green = %d, want 255", dst[last+1])
	}
}

func TestTileOverRGB8_PanicsOnBadShape(t *testing.T) {
	tests := []struct {
		name   string
		src    []uint16
		dst    []uint8
		stride int
	}{
		{"short source", make([]uint16, 16), make([]uint8, tile.Size*tile.Size*3), tile.Size * 3},
		{"short destination", make([]uint16, tile.BufLen), make([]uint8, 16), tile.Size * 3},
		{"stride below row width", make([]uint16, tile.BufLen), make([]uint8, tile.Size*tile.Size*3), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			TileOverRGB8(tt.src, tt.dst, tt.stride)
		})
	}
}
