package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelcrawler/internal/telemetry"
)

// Texture is an asset that was found and whose dimensions are known.
type Texture struct {
	Asset
	Width, Height int
	Frames        int // Frames in a single-row strip; 1 for plain images
}

// Placeholder stands in for a missing texture.
type Placeholder struct {
	Key    string
	Color  color.RGBA
	Width  int
	Height int
}

// ScanReport summarizes a catalog scan.
type ScanReport struct {
	Total   int
	Found   int
	Missing []string
}

// Catalog knows which manifest entries exist on the asset filesystem.
// A nil filesystem behaves as an empty pack.
type Catalog struct {
	fsys     fs.FS
	logger   *log.Logger
	assets   map[string]Asset
	order    []string
	textures map[string]*Texture
	warned   map[string]bool
}

// NewCatalog creates a catalog over fsys for the given assets.
// The filesystem root must contain the BasePath folder.
func NewCatalog(fsys fs.FS, manifest []Asset, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	c := &Catalog{
		fsys:     fsys,
		logger:   logger,
		assets:   make(map[string]Asset, len(manifest)),
		textures: make(map[string]*Texture),
		warned:   make(map[string]bool),
	}
	for _, a := range manifest {
		if _, dup := c.assets[a.Key]; !dup {
			c.order = append(c.order, a.Key)
		}
		c.assets[a.Key] = a
	}
	return c
}

// Scan checks every asset in manifest order. progress, when set, is called
// after each asset with the number done so far.
func (c *Catalog) Scan(ctx context.Context, progress func(done, total int, key string)) ScanReport {
	_, span := telemetry.Tracer("assets").Start(ctx, "assets.scan")
	defer span.End()

	report := ScanReport{Total: len(c.order)}
	for i, key := range c.order {
		tex, err := c.check(c.assets[key])
		if err != nil {
			report.Missing = append(report.Missing, key)
		} else {
			c.textures[key] = tex
			report.Found++
		}
		if progress != nil {
			progress(i+1, report.Total, key)
		}
	}

	span.SetAttributes(
		attribute.Int("assets.total", report.Total),
		attribute.Int("assets.found", report.Found),
		attribute.Int("assets.missing", len(report.Missing)),
	)
	if len(report.Missing) > 0 {
		c.logger.Printf("assets: %d of %d textures missing, placeholders will be used", len(report.Missing), report.Total)
	}
	return report
}

func (c *Catalog) check(a Asset) (*Texture, error) {
	if c.fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := c.fsys.Open(a.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}

	frames := 1
	if a.Kind == KindSpritesheet {
		if a.FrameWidth <= 0 {
			return nil, errors.New("spritesheet without frame width")
		}
		frames = cfg.Width / a.FrameWidth
	}
	return &Texture{Asset: a, Width: cfg.Width, Height: cfg.Height, Frames: frames}, nil
}

// Exists reports whether the texture was found by the last scan.
func (c *Catalog) Exists(key string) bool {
	_, ok := c.textures[key]
	return ok
}

// Texture returns the scanned texture for key.
func (c *Catalog) Texture(key string) (*Texture, bool) {
	t, ok := c.textures[key]
	return t, ok
}

// Frames returns the frame count of a texture, or 0 if it does not exist.
func (c *Catalog) Frames(key string) int {
	if t, ok := c.textures[key]; ok {
		return t.Frames
	}
	return 0
}

// Open opens the file behind a scanned texture.
func (c *Catalog) Open(key string) (fs.File, error) {
	t, ok := c.textures[key]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return c.fsys.Open(t.Path)
}

// FS returns the underlying filesystem.
func (c *Catalog) FS() fs.FS {
	return c.fsys
}

// Resolve returns the texture for key, or a placeholder when it is missing.
func (c *Catalog) Resolve(key string, tint color.RGBA, width, height int) (*Texture, *Placeholder) {
	if t, ok := c.textures[key]; ok {
		return t, nil
	}
	p := c.Placeholder(key, tint, width, height)
	return nil, &p
}

// Placeholder returns a colored stand-in for key and logs a warning the
// first time a given key is substituted.
func (c *Catalog) Placeholder(key string, tint color.RGBA, width, height int) Placeholder {
	if !c.warned[key] {
		c.warned[key] = true
		c.logger.Printf("assets: texture not found: %s, creating placeholder", key)
	}
	return Placeholder{Key: key, Color: tint, Width: width, Height: height}
}
