package field

import (
	"image/color"
	"math"
)

// mapRange linearly maps v from [start1,stop1] onto [start2,stop2].
// An empty input span maps everything to start2.
func mapRange(v, start1, stop1, start2, stop2 float64) float64 {
	span := stop1 - start1
	if span == 0 {
		return start2
	}
	return (v-start1)*(stop2-start2)/span + start2
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v/255) * 255))
}

// PositionColor colors a point of a w×h surface: red follows x, green
// follows y and blue grows with the distance from the surface center,
// saturating at the half of the shorter side.
func PositionColor(x, y, w, h float64) (r, g, b uint8) {
	r = channel(mapRange(x, 0, w, 0, 255))
	g = channel(mapRange(y, 0, h, 0, 255))
	d := dist(w/2, h/2, x, y)
	b = channel(mapRange(d, 0, math.Min(w/2, h/2), 0, 255))
	return r, g, b
}

// particleColor is PositionColor with the particle opacity as alpha.
func particleColor(p *Particle, w, h float64) color.NRGBA {
	r, g, b := PositionColor(p.X, p.Y, w, h)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(p.Opacity) * 255))}
}
