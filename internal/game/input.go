package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is polled once per tick.
type InputSource interface {
	CursorPosition() (x, y int)
	// Wheel returns the wheel movement since the last tick. Positive y is up.
	Wheel() (dx, dy float64)
	QuitRequested() bool
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenInput) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
