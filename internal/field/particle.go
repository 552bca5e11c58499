package field

import (
	"math"
	"math/rand/v2"
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

func newParticle(x, y, minRadius, maxRadius float64, rng *rand.Rand) Particle {
	return Particle{
		X:       x,
		Y:       y,
		VX:      (rng.Float64() - 0.5) * 2,
		VY:      (rng.Float64() - 0.5) * 2,
		Radius:  minRadius + rng.Float64()*(maxRadius-minRadius),
		Opacity: 1,
	}
}

// physics holds the per-frame constants shared by every particle.
type physics struct {
	repelRadius   float64
	repelStrength float64
	decay         float64
	width, height float64
}

// repel pushes p away from the pointer at (px,py) with a constant-strength
// impulse when it lies inside the repulsion radius.
func (p *Particle) repel(px, py float64, ph physics) {
	dx := p.X - px
	dy := p.Y - py
	d := math.Hypot(dx, dy)
	if d == 0 || d >= ph.repelRadius {
		return
	}
	p.VX += dx / d * ph.repelStrength
	p.VY += dy / d * ph.repelStrength
}

// bounce keeps p inside [0,w]×[0,h], turning the velocity back inward on
// the axis that touched an edge.
func (p *Particle) bounce(w, h float64) {
	if p.X <= 0 {
		p.X = 0
		p.VX = math.Abs(p.VX)
	} else if p.X >= w {
		p.X = w
		p.VX = -math.Abs(p.VX)
	}
	if p.Y <= 0 {
		p.Y = 0
		p.VY = math.Abs(p.VY)
	} else if p.Y >= h {
		p.Y = h
		p.VY = -math.Abs(p.VY)
	}
}

// update advances p by one frame and reports whether it is still visible.
func (p *Particle) update(px, py float64, ph physics) bool {
	p.repel(px, py, ph)
	p.X += p.VX
	p.Y += p.VY
	p.bounce(ph.width, ph.height)
	p.Opacity -= ph.decay
	return p.Opacity > 0
}
