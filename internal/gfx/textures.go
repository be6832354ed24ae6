package gfx

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/samdwyer/pixelcrawler/internal/assets"
)

// textures lazily uploads scanned catalog textures to the GPU.
type textures struct {
	catalog *assets.Catalog
	logger  *log.Logger
	images  map[string]*ebiten.Image
	failed  map[string]bool
}

func newTextures(catalog *assets.Catalog, logger *log.Logger) *textures {
	return &textures{
		catalog: catalog,
		logger:  logger,
		images:  make(map[string]*ebiten.Image),
		failed:  make(map[string]bool),
	}
}

// frame returns the sub image for frame i of key, or nil when the texture
// is missing or could not be loaded.
func (t *textures) frame(key string, i int) *ebiten.Image {
	tex, ok := t.catalog.Texture(key)
	if !ok || t.failed[key] {
		return nil
	}
	img, ok := t.images[key]
	if !ok {
		var err error
		img, _, err = ebitenutil.NewImageFromFileSystem(t.catalog.FS(), tex.Path)
		if err != nil {
			t.failed[key] = true
			t.logger.Printf("gfx: loading %s: %v", key, err)
			return nil
		}
		t.images[key] = img
	}
	r := frameRect(tex, i)
	if r.Empty() {
		return img
	}
	return img.SubImage(r).(*ebiten.Image)
}

// frameRect returns the source rectangle of frame i on a single-row strip.
func frameRect(tex *assets.Texture, i int) image.Rectangle {
	if tex.Kind != assets.KindSpritesheet || tex.FrameWidth <= 0 {
		return image.Rect(0, 0, tex.Width, tex.Height)
	}
	h := tex.FrameHeight
	if h <= 0 || h > tex.Height {
		h = tex.Height
	}
	if i < 0 || i >= tex.Frames {
		i = 0
	}
	x := i * tex.FrameWidth
	return image.Rect(x, 0, x+tex.FrameWidth, h)
}
