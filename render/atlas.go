package render

import (
	"context"
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/plus3/invaders/config"
	"github.com/plus3/invaders/world"
)

// Atlas holds one texture per sprite.
type Atlas struct {
	textures [world.SpriteCount]*Texture
}

// NewAtlas starts loading the sprites named in assets from fsys. fsys is
// expected to be rooted at assets.Dir.
func NewAtlas(fsys fs.FS, assets config.Assets, logger *log.Logger) *Atlas {
	a := &Atlas{}
	a.textures[world.SpritePlayer] = LoadTexture(fsys, assets.Player, logger)
	a.textures[world.SpriteEnemy] = LoadTexture(fsys, assets.Enemy, logger)
	a.textures[world.SpriteProjectile] = LoadTexture(fsys, assets.Projectile, logger)
	return a
}

// Texture returns the texture for id.
func (a *Atlas) Texture(id world.SpriteID) *Texture {
	return a.textures[id]
}

// Wait blocks until every texture finished loading or ctx is done. Load
// failures are joined into the returned error.
func (a *Atlas) Wait(ctx context.Context) error {
	var errs []error
	for _, t := range a.textures {
		if err := t.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
