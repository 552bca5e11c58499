package game

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// labelFill is the share of the surface width the label may cover.
const labelFill = 0.9

// LoadFace builds the label font source from the embedded Go Regular font.
func LoadFace() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	return src, nil
}

// fitLabelSize shrinks size until str, measured in src, covers at most
// labelFill of width.
func fitLabelSize(src *text.GoTextFaceSource, size, width float64, str string) float64 {
	if str == "" || width <= 0 {
		return size
	}
	measured, _ := text.Measure(str, &text.GoTextFace{Source: src, Size: size}, 0)
	if measured <= 0 {
		return size
	}
	return size * math.Min(1, labelFill*width/measured)
}

// screenSurface draws onto the ebiten screen image of the current frame.
type screenSurface struct {
	screen     *ebiten.Image
	background color.Color
	font       *text.GoTextFaceSource
	labelSize  float64

	// fitted size for the last label and width seen
	fitLabel string
	fitWidth float64
	fitSize  float64
}

func (s *screenSurface) Clear() {
	s.screen.Fill(s.background)
}

func (s *screenSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.screen, float32(x), float32(y), float32(r), c, true)
}

func (s *screenSurface) FillText(str string, x, y float64, c color.Color) {
	if s.font == nil {
		return
	}
	w := float64(s.screen.Bounds().Dx())
	if str != s.fitLabel || w != s.fitWidth {
		s.fitLabel, s.fitWidth = str, w
		s.fitSize = fitLabelSize(s.font, s.labelSize, w, str)
	}
	face := &text.GoTextFace{Source: s.font, Size: s.fitSize}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.screen, str, face, op)
}
