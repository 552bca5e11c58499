package field

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette int

const (
	PaletteDark Palette = iota
	PaletteLight
)

func (p Palette) String() string {
	if p == PaletteLight {
		return "light"
	}
	return "dark"
}

// snapEpsilon is a tenth of one 8-bit color step.
const snapEpsilon = 0.1 / 255

// TextColor eases a label color toward a target palette.
type TextColor struct {
	Current colorful.Color
	Target  colorful.Color
	palette Palette

	dark, light colorful.Color
	factor      float64
}

func NewTextColor(dark, light colorful.Color, factor float64) *TextColor {
	return &TextColor{
		Current: dark,
		Target:  dark,
		palette: PaletteDark,
		dark:    dark,
		light:   light,
		factor:  factor,
	}
}

// SetPalette retargets the easing and reports whether the palette changed.
func (t *TextColor) SetPalette(p Palette) bool {
	if p == PaletteLight {
		t.Target = t.light
	} else {
		t.Target = t.dark
	}
	changed := p != t.palette
	t.palette = p
	return changed
}

func (t *TextColor) Palette() Palette { return t.palette }

// Step moves Current a fixed fraction of the remaining distance toward
// Target. Once every channel is within snapEpsilon it lands on Target.
func (t *TextColor) Step() {
	t.Current = t.Current.BlendRgb(t.Target, t.factor)
	if math.Abs(t.Current.R-t.Target.R) < snapEpsilon &&
		math.Abs(t.Current.G-t.Target.G) < snapEpsilon &&
		math.Abs(t.Current.B-t.Target.B) < snapEpsilon {
		t.Current = t.Target
	}
}

// RGBA floors the current color to 8 bits per channel.
func (t *TextColor) RGBA() color.RGBA {
	return color.RGBA{R: floor8(t.Current.R), G: floor8(t.Current.G), B: floor8(t.Current.B), A: 0xff}
}

// floor8 tolerates the float error of a channel that came from an exact
// 8-bit value, so 30/255 maps back to 30 rather than 29.
func floor8(v float64) uint8 {
	return uint8(math.Floor(clamp01(v)*255 + 1e-9))
}
