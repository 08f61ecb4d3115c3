package render

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/sprite.kage
var spriteShaderSrc []byte

// Pipeline is the compiled sprite shader shared by every quad.
type Pipeline struct {
	shader *ebiten.Shader
}

// NewPipeline compiles the sprite shader.
func NewPipeline() (*Pipeline, error) {
	shader, err := ebiten.NewShader(spriteShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compile sprite shader: %w", err)
	}
	return &Pipeline{shader: shader}, nil
}

// DrawQuad draws one textured quad onto dst with source-over blending.
func (p *Pipeline) DrawQuad(dst *ebiten.Image, vertices []ebiten.Vertex, tex *ebiten.Image) {
	op := &ebiten.DrawTrianglesShaderOptions{
		Blend: ebiten.BlendSourceOver,
	}
	op.Images[0] = tex
	dst.DrawTrianglesShader(vertices, QuadIndices, p.shader, op)
}

// Dispose releases the shader.
func (p *Pipeline) Dispose() {
	p.shader.Deallocate()
}
