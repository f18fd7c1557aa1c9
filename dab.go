package tilecanvas

// DefaultHardness is the falloff shape used when none is specified.
const DefaultHardness = 0.5

// Dab describes one circular, falloff-weighted paint stamp. A brush stroke
// is a sequence of dabs; the parameters are computed by a brush engine
// outside this package.
type Dab struct {
	// X, Y is the dab center in world-space pixels.
	X, Y float64

	// Radius is the dab radius in pixels. Radii below 0.1 are ignored.
	Radius float64

	// Color is the dab color. Components must be in [0, 1]; the alpha
	// component is ignored (use Opaque).
	Color RGBA

	// Opaque is the dab opacity at full falloff weight, in [0, 1].
	Opaque float64

	// Hardness controls how quickly opacity falls off from center to
	// edge, in (0, 1]. 1 is a hard-edged circle; 0 draws nothing.
	Hardness float64

	// AlphaEraser scales the alpha written by the dab, in [0, 1].
	// 1 paints normally; values below 1 make the surface more
	// transparent (eraser behavior).
	AlphaEraser float64
}

// NewDab returns a dab with the given geometry and color, default hardness,
// and erasing disabled.
func NewDab(x, y, radius float64, color RGBA, opaque float64) Dab {
	return Dab{
		X:           x,
		Y:           y,
		Radius:      radius,
		Color:       color,
		Opaque:      opaque,
		Hardness:    DefaultHardness,
		AlphaEraser: 1.0,
	}
}
