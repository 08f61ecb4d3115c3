//go:build !js

package game

import "github.com/hajimehoshi/ebiten/v2"

func quitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}
