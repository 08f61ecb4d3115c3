// Package assets embeds the default sprite images so the game runs without
// a static directory next to the binary, including in the browser.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static/*.png
var files embed.FS

// FS returns the embedded sprites, rooted at the directory holding them.
func FS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
