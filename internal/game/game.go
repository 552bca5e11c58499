package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"go.uber.org/zap"
)

// Game hosts the particle field inside the ebiten loop. Update is the frame
// tick, Draw renders it and Layout keeps the surface sized to the window.
type Game struct {
	field *field.Animator
	input InputSource
	now   func() time.Time
	log   *zap.Logger

	surface screenSurface

	scrollStep float64
	maxScroll  float64
	scrollY    float64

	// last dispatched cursor position
	cursorX, cursorY int
	cursorSeen       bool

	width, height int
}

func New(cfg *config.Config, anim *field.Animator, font *text.GoTextFaceSource, log *zap.Logger) *Game {
	w, h := anim.Size()
	return &Game{
		field: anim,
		input: ebitenInput{},
		now:   time.Now,
		log:   log,
		surface: screenSurface{
			background: cfg.Window.BackgroundColor(),
			font:       font,
			labelSize:  cfg.Text.Size,
		},
		scrollStep: cfg.Scroll.Step,
		maxScroll:  cfg.Scroll.Max,
		width:      int(w),
		height:     int(h),
	}
}

func (g *Game) Update() error {
	if g.input.QuitRequested() {
		return ebiten.Termination
	}
	g.pollInput()
	g.field.Update(g.now())
	return nil
}

// pollInput turns the polled input state into animator events.
func (g *Game) pollInput() {
	x, y := g.input.CursorPosition()
	if !g.cursorSeen {
		g.cursorX, g.cursorY = x, y
		g.cursorSeen = true
	} else if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.field.OnPointerMove(float64(x), float64(y))
	}

	if _, dy := g.input.Wheel(); dy != 0 {
		g.scrollY = math.Max(0, math.Min(g.maxScroll, g.scrollY-dy*g.scrollStep))
		g.field.OnScroll(g.scrollY, g.now())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.screen = screen
	g.field.Draw(&g.surface)
	g.surface.screen = nil
}

// Layout renders at the window size so the field always spans the whole
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
