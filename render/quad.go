package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/invaders/world"
)

// QuadIndices are the two triangles of a unit quad whose corners are listed
// clockwise from the top-left.
var QuadIndices = []uint16{0, 1, 2, 0, 2, 3}

var unitQuad = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Quad is one entry of a frame's display list.
type Quad struct {
	Id     world.EntityId
	Kind   world.Kind
	Sprite world.SpriteID
	Rect   world.Rect
}

// drawOrder is the order kinds are painted in; later kinds end up on top.
var drawOrder = [...]world.Kind{world.Player, world.Enemy, world.PlayerShot, world.EnemyShot}

// Frame appends the display list for w to dst: the player, then enemies,
// player projectiles and enemy projectiles. It does not modify w.
func Frame(w *world.World, dst []Quad) []Quad {
	for _, kind := range drawOrder {
		for e := range w.Each(kind) {
			dst = append(dst, Quad{Id: e.Id, Kind: e.Kind, Sprite: e.Sprite, Rect: e.Rect})
		}
	}
	return dst
}

// Projection maps logical surface pixels onto a canvas of the given size.
func Projection(logicalW, logicalH, canvasW, canvasH float64) ebiten.GeoM {
	var g ebiten.GeoM
	if logicalW > 0 && logicalH > 0 {
		g.Scale(canvasW/logicalW, canvasH/logicalH)
	}
	return g
}

// Model maps the unit quad onto r: scale by size, then translate to position.
func Model(r world.Rect) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(r.W, r.H)
	g.Translate(r.X, r.Y)
	return g
}

// AppendVertices appends the four vertices of r, transformed by its model
// matrix followed by proj. The whole srcW x srcH texture is mapped onto it.
func AppendVertices(dst []ebiten.Vertex, r world.Rect, proj ebiten.GeoM, srcW, srcH float64) []ebiten.Vertex {
	m := Model(r)
	m.Concat(proj)

	for _, corner := range unitQuad {
		x, y := m.Apply(corner[0], corner[1])
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(corner[0] * srcW),
			SrcY:   float32(corner[1] * srcH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	return dst
}
