package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterize(t *testing.T) {
	for _, s := range sprites {
		t.Run(s.name, func(t *testing.T) {
			img := rasterize(s)
			assert.Equal(t, image.Rect(0, 0, s.width, s.height), img.Bounds())

			// Centre row crosses the shape, the corner stays transparent.
			opaque := 0
			for x := 0; x < s.width; x++ {
				if img.RGBAAt(x, s.height/2).A > 0 {
					opaque++
				}
			}
			assert.Positive(t, opaque)
			assert.Zero(t, img.RGBAAt(0, 0).A)
		})
	}
}

func TestWriteSprite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bullet.png")
	require.NoError(t, writeSprite(path, sprites[2]))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 16, cfg.Width)
}
