// Package render draws a composed engine.Frame and persists it as a PNG.
package render

import (
	"image/color"
	"io"

	"github.com/tartampluch/go-yeardots/internal/engine"
)

// Canvas is the drawing surface the driver talks to.
// Implementations own rasterisation, glyph rendering and encoding.
type Canvas interface {
	// Clear fills the whole canvas with c.
	Clear(c color.RGBA)
	// FillEllipse fills the ellipse inscribed in box.
	FillEllipse(box engine.Rect, c color.RGBA)
	// FillRoundedRect fills box with corners of the given radius.
	FillRoundedRect(box engine.Rect, radius float64, c color.RGBA)
	// MeasureText returns the rendered width and line height of s.
	MeasureText(s string) (w, h float64)
	// DrawText renders s left to right with its top-left corner at (x, y).
	DrawText(s string, x, y float64, c color.RGBA)
	// EncodePNG writes the canvas to w.
	EncodePNG(w io.Writer) error
}
