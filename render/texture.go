package render

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Texture is an image decoded in the background. Until the decode finishes,
// or when it fails, Image returns a transparent 1x1 placeholder.
type Texture struct {
	name string
	done chan struct{}

	// Written once by the loader before done is closed.
	decoded image.Image
	err     error

	gpu         *ebiten.Image
	placeholder *ebiten.Image
}

// LoadTexture starts decoding name from fsys and returns immediately. A failed
// load is logged once at warn level.
func LoadTexture(fsys fs.FS, name string, logger *log.Logger) *Texture {
	t := &Texture{
		name: name,
		done: make(chan struct{}),
	}

	go func() {
		defer close(t.done)

		t.decoded, t.err = decodeFile(fsys, name)
		if t.err != nil {
			logger.Warn("sprite unavailable, drawing blank quads", "name", name, "error", t.err)
			return
		}
		b := t.decoded.Bounds()
		logger.Debug("sprite loaded", "name", name, "width", b.Dx(), "height", b.Dy())
	}()

	return t
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Name returns the path the texture was loaded from.
func (t *Texture) Name() string { return t.name }

// Ready reports whether loading has finished, successfully or not.
func (t *Texture) Ready() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Wait blocks until loading has finished or ctx is done.
func (t *Texture) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Decoded returns the decoded image once loading finished. It returns nil and
// no error while loading is still in progress.
func (t *Texture) Decoded() (image.Image, error) {
	if !t.Ready() {
		return nil, nil
	}
	return t.decoded, t.err
}

// Size returns the dimensions of the image Image currently returns.
func (t *Texture) Size() (int, int) {
	img, err := t.Decoded()
	if img == nil || err != nil {
		return 1, 1
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the GPU image, uploading the decoded pixels on first use.
// Call it from the draw goroutine only.
func (t *Texture) Image() *ebiten.Image {
	if t.gpu != nil {
		return t.gpu
	}

	img, err := t.Decoded()
	if img == nil || err != nil {
		if t.placeholder == nil {
			t.placeholder = ebiten.NewImage(1, 1)
		}
		return t.placeholder
	}

	t.gpu = ebiten.NewImageFromImage(img)
	if t.placeholder != nil {
		t.placeholder.Deallocate()
		t.placeholder = nil
	}
	return t.gpu
}
