// mkassets writes the placeholder sprites: a ship, an invader and a round
// projectile, as PNG files.
//
// Usage:
//
//	mkassets [-out dir]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/vector"
)

type sprite struct {
	name   string
	width  int
	height int
	fill   color.RGBA
	path   func(z *vector.Rasterizer, w, h float32)
}

var sprites = []sprite{
	{"player.png", 64, 64, color.RGBA{80, 220, 120, 255}, shipPath},
	{"enemy.png", 64, 48, color.RGBA{220, 80, 220, 255}, invaderPath},
	{"bullet.png", 16, 16, color.RGBA{250, 230, 90, 255}, bulletPath},
}

func main() {
	out := flag.String("out", "assets/static", "Output directory")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "mkassets"})

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Fatal("create output directory", "dir", *out, "error", err)
	}

	for _, s := range sprites {
		path := filepath.Join(*out, s.name)
		if err := writeSprite(path, s); err != nil {
			logger.Fatal("write sprite", "path", path, "error", err)
		}
		logger.Info("wrote sprite", "path", path, "width", s.width, "height", s.height)
	}
}

// rasterize draws s into a transparent image.
func rasterize(s sprite) *image.RGBA {
	z := vector.NewRasterizer(s.width, s.height)
	s.path(z, float32(s.width), float32(s.height))

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	z.Draw(img, img.Bounds(), image.NewUniform(s.fill), image.Point{})
	return img
}

func writeSprite(path string, s sprite) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, rasterize(s)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// shipPath is a triangle pointing up.
func shipPath(z *vector.Rasterizer, w, h float32) {
	z.MoveTo(w/2, h*0.06)
	z.LineTo(w*0.94, h*0.94)
	z.LineTo(w*0.06, h*0.94)
	z.ClosePath()
}

var invaderPattern = []string{
	"00100000100",
	"00010001000",
	"00111111100",
	"01101110110",
	"11111111111",
	"10111111101",
	"10100000101",
	"00011011000",
}

// invaderPath is the classic crab, one square per set cell.
func invaderPath(z *vector.Rasterizer, w, h float32) {
	cw := w / float32(len(invaderPattern[0]))
	ch := h / float32(len(invaderPattern))

	for r, row := range invaderPattern {
		for c, cell := range row {
			if cell != '1' {
				continue
			}
			x, y := float32(c)*cw, float32(r)*ch
			z.MoveTo(x, y)
			z.LineTo(x+cw, y)
			z.LineTo(x+cw, y+ch)
			z.LineTo(x, y+ch)
			z.ClosePath()
		}
	}
}

// bulletPath approximates a circle with cubic Béziers.
func bulletPath(z *vector.Rasterizer, w, h float32) {
	const k = 0.5523
	cx, cy := w/2, h/2
	rx, ry := w/2-1, h/2-1

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	z.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	z.ClosePath()
}
