package field

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
	"go.uber.org/zap"
)

// Surface is the 2D target the animator draws on once per frame.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	// FillText draws s centered on (x,y).
	FillText(s string, x, y float64, c color.Color)
}

// PaletteListener is told when the label switches palette.
type PaletteListener interface {
	PaletteChanged(p Palette)
}

// Animator owns the particle field, the pointer, and the label color.
// It is not safe for concurrent use; every method is expected to run on
// the frame loop goroutine.
type Animator struct {
	cfg       config.ParticlesConfig
	label     string
	threshold float64

	particles     []Particle
	width, height float64
	pointerX      float64
	pointerY      float64

	text     *TextColor
	scroll   *Debouncer[float64]
	listener PaletteListener

	rng *rand.Rand
	log *zap.Logger
}

type Option func(*Animator)

// WithRand replaces the default time-seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(a *Animator) { a.rng = rng }
}

func WithLogger(log *zap.Logger) Option {
	return func(a *Animator) { a.log = log }
}

func WithPaletteListener(l PaletteListener) Option {
	return func(a *Animator) { a.listener = l }
}

func New(cfg *config.Config, width, height float64, opts ...Option) *Animator {
	dark, light := cfg.Text.Colors()
	seed := uint64(time.Now().UnixNano())
	a := &Animator{
		cfg:       cfg.Particles,
		label:     cfg.Text.Label,
		threshold: cfg.Scroll.Threshold,
		particles: make([]Particle, 0, cfg.Particles.Max),
		width:     width,
		height:    height,
		pointerX:  -100,
		pointerY:  -100,
		text:      NewTextColor(dark, light, cfg.Text.EaseFactor),
		scroll:    NewDebouncer[float64](cfg.Scroll.Debounce),
		rng:       rand.New(rand.NewPCG(seed, seed>>1|1)),
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Animator) Particles() []Particle   { return a.particles }
func (a *Animator) Size() (w, h float64)    { return a.width, a.height }
func (a *Animator) Pointer() (x, y float64) { return a.pointerX, a.pointerY }
func (a *Animator) Text() *TextColor        { return a.text }

// Spawn adds a batch of particles at the surface center without letting the
// field grow past its cap.
func (a *Animator) Spawn() {
	n := min(a.cfg.Batch, a.cfg.Max-len(a.particles))
	cx, cy := a.width/2, a.height/2
	for i := 0; i < n; i++ {
		a.particles = append(a.particles, newParticle(cx, cy, a.cfg.MinRadius, a.cfg.MaxRadius, a.rng))
	}
}

// Step advances every particle by one frame and drops the ones that have
// faded out. Survivors keep their relative order.
func (a *Animator) Step() {
	ph := physics{
		repelRadius:   a.cfg.RepulsionRadius,
		repelStrength: a.cfg.RepulsionStrength,
		decay:         a.cfg.OpacityDecay,
		width:         a.width,
		height:        a.height,
	}
	live := a.particles[:0]
	for i := range a.particles {
		p := a.particles[i]
		if p.update(a.pointerX, a.pointerY, ph) {
			live = append(live, p)
		}
	}
	clear(a.particles[len(live):])
	a.particles = live
}

func (a *Animator) Render(s Surface) {
	s.Clear()
	for i := range a.particles {
		p := &a.particles[i]
		s.FillCircle(p.X, p.Y, p.Radius, particleColor(p, a.width, a.height))
	}
}

func (a *Animator) UpdateTextColor() {
	a.text.Step()
}

func (a *Animator) DrawLabel(s Surface) {
	s.FillText(a.label, a.width/2, a.height/2, a.text.RGBA())
}

func (a *Animator) OnPointerMove(x, y float64) {
	a.pointerX, a.pointerY = x, y
}

// OnScroll records a scroll offset; only the last offset of a burst is
// evaluated, once the burst has been quiet for the debounce delay.
func (a *Animator) OnScroll(y float64, now time.Time) {
	a.log.Debug("scroll", zap.Float64("y", y))
	a.scroll.Push(y, now)
}

func (a *Animator) OnResize(w, h float64) {
	if w == a.width && h == a.height {
		return
	}
	a.log.Debug("resize", zap.Float64("width", w), zap.Float64("height", h))
	a.width, a.height = w, h
}

func (a *Animator) applyScroll(now time.Time) {
	y, ok := a.scroll.Poll(now)
	if !ok {
		return
	}
	p := PaletteDark
	if y > a.threshold {
		p = PaletteLight
	}
	if !a.text.SetPalette(p) {
		return
	}
	a.log.Info("label palette changed", zap.Stringer("palette", p), zap.Float64("scroll", y))
	if a.listener != nil {
		a.listener.PaletteChanged(p)
	}
}

// Update runs the simulation half of a frame.
func (a *Animator) Update(now time.Time) {
	a.applyScroll(now)
	a.Spawn()
	a.Step()
	a.UpdateTextColor()
}

// Draw runs the rendering half of a frame.
func (a *Animator) Draw(s Surface) {
	a.Render(s)
	a.DrawLabel(s)
}
