package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/invaders/sim"
)

const hudScale = 2

// HUD shows the score and, once the game ended, the outcome message. It
// implements sim.Sink.
type HUD struct {
	face    text.Face
	score   int
	outcome sim.Outcome
}

// NewHUD returns a HUD showing a zero score and no message.
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) ScoreChanged(score int) { h.score = score }

func (h *HUD) Finished(outcome sim.Outcome) { h.outcome = outcome }

// ScoreText returns the score readout.
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("Score: %d", h.score)
}

// Message returns the outcome message and whether it is visible.
func (h *HUD) Message() (string, bool) {
	if !h.outcome.Terminal() {
		return "", false
	}
	return h.outcome.Message(), true
}

// Draw paints the readout in the top-left corner and the message centred.
func (h *HUD) Draw(dst *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, h.ScoreText(), h.face, op)

	msg, ok := h.Message()
	if !ok {
		return
	}

	w, ht := text.Measure(msg, h.face, 0)
	b := dst.Bounds()

	op = &text.DrawOptions{}
	op.GeoM.Scale(hudScale*2, hudScale*2)
	op.GeoM.Translate(
		(float64(b.Dx())-w*hudScale*2)/2,
		(float64(b.Dy())-ht*hudScale*2)/2,
	)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, msg, h.face, op)
}
