package assets_test

import (
	"image"
	_ "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/invaders/assets"
	"github.com/plus3/invaders/config"
)

func TestEmbeddedSpritesDecode(t *testing.T) {
	a := config.Default().Assets
	for _, name := range []string{a.Player, a.Enemy, a.Projectile} {
		t.Run(name, func(t *testing.T) {
			f, err := assets.FS().Open(name)
			require.NoError(t, err)
			defer f.Close()

			img, format, err := image.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, "png", format)
			assert.Positive(t, img.Bounds().Dx())
		})
	}
}
