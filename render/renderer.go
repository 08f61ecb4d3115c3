// Package render draws the world as textured quads through one compiled
// shader, plus the score readout and end-of-game message.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/invaders/world"
)

// Renderer turns a world into draw calls. It only reads the world.
type Renderer struct {
	pipeline *Pipeline
	atlas    *Atlas

	quads    []Quad
	vertices []ebiten.Vertex
}

// NewRenderer returns a renderer drawing through p with the textures of a.
func NewRenderer(p *Pipeline, a *Atlas) *Renderer {
	return &Renderer{
		pipeline: p,
		atlas:    a,
		vertices: make([]ebiten.Vertex, 0, 4),
	}
}

// Draw clears dst to black and draws every entity of w on it, scaled from
// the world's size to dst's size.
func (r *Renderer) Draw(dst *ebiten.Image, w *world.World) {
	dst.Fill(color.Black)

	b := dst.Bounds()
	proj := Projection(w.Width(), w.Height(), float64(b.Dx()), float64(b.Dy()))

	r.quads = Frame(w, r.quads[:0])
	for _, q := range r.quads {
		img := r.atlas.Texture(q.Sprite).Image()
		src := img.Bounds()

		r.vertices = AppendVertices(r.vertices[:0], q.Rect, proj, float64(src.Dx()), float64(src.Dy()))
		r.pipeline.DrawQuad(dst, r.vertices, img)
	}
}
