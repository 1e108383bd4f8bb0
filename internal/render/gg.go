package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/tartampluch/go-yeardots/internal/config"
	"github.com/tartampluch/go-yeardots/internal/engine"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace reads a TrueType/OpenType file and builds a face of size points.
// Any failure here is fatal for the run: without a font there is no label.
func LoadFontFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", config.ErrFontLoad, path, err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %s: %w", config.ErrFontLoad, path, config.ErrFontParse, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     config.FontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %q: %s: %w", config.ErrFontLoad, path, config.ErrFontFace, err)
	}
	return face, nil
}

// GGCanvas implements Canvas on top of fogleman/gg.
type GGCanvas struct {
	dc     *gg.Context
	ascent float64
}

// NewGGCanvas allocates a canvas of the given size. A nil face keeps gg's
// built-in bitmap font.
func NewGGCanvas(size engine.Size, face font.Face) *GGCanvas {
	dc := gg.NewContext(size.Width, size.Height)
	c := &GGCanvas{dc: dc}
	if face != nil {
		dc.SetFontFace(face)
		c.ascent = float64(face.Metrics().Ascent) / 64
	}
	return c
}

func (c *GGCanvas) Clear(col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *GGCanvas) FillEllipse(box engine.Rect, col color.RGBA) {
	center := box.Center()
	c.dc.DrawEllipse(center.X, center.Y, box.Width()/2, box.Height()/2)
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *GGCanvas) FillRoundedRect(box engine.Rect, radius float64, col color.RGBA) {
	c.dc.DrawRoundedRectangle(box.X0, box.Y0, box.Width(), box.Height(), radius)
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *GGCanvas) MeasureText(s string) (float64, float64) {
	return c.dc.MeasureString(s)
}

// DrawText converts the top-left anchor into gg's baseline coordinates.
func (c *GGCanvas) DrawText(s string, x, y float64, col color.RGBA) {
	c.dc.SetColor(col)
	if c.ascent > 0 {
		c.dc.DrawString(s, x, y+c.ascent)
		return
	}
	c.dc.DrawStringAnchored(s, x, y, 0, 1)
}

func (c *GGCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Image exposes the backing raster, mostly for tests.
func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}
