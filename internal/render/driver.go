package render

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-yeardots/internal/config"
	"github.com/tartampluch/go-yeardots/internal/engine"
)

// Draw paints f onto c: background, one dot per day in row-major order,
// the countdown label, then the optional progress bar.
func Draw(c Canvas, f engine.Frame) error {
	if c == nil {
		return errors.New(config.ErrNilCanvas)
	}

	c.Clear(f.Background)

	for _, dot := range f.Dots {
		c.FillEllipse(dot.Box, dot.State.Color())
	}

	if f.Label.Text != "" {
		w, _ := c.MeasureText(f.Label.Text)
		x := (float64(f.Size.Width) - w) / 2
		c.DrawText(f.Label.Text, x, f.Label.Top, f.Label.Color)
	}

	if f.Bar != nil {
		for _, seg := range f.Bar.Segments {
			col := f.EmptyColor
			if seg.Filled {
				col = f.FilledColor
			}
			c.FillRoundedRect(seg.Box, f.BarRadius, col)
		}
	}
	return nil
}

// SavePNG encodes c next to path and renames it into place, so readers of
// path only ever see a complete image from a successful run.
func SavePNG(c Canvas, path string) error {
	if c == nil {
		return errors.New(config.ErrNilCanvas)
	}
	if path == "" {
		return errors.New(config.ErrOutputPathEmpty)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", config.ErrSaveImage, config.ErrTempFile, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := c.EncodePNG(tmp); err != nil {
		return fmt.Errorf("%s: %s: %w", config.ErrSaveImage, config.ErrEncodeImage, err)
	}
	if err := tmp.Chmod(config.FilePermPublicR); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveImage, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveImage, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: %s: %w", config.ErrSaveImage, config.ErrRenameImage, err)
	}
	committed = true

	attrs := []any{
		config.LogKeyComponent, config.CompRender,
		config.LogKeyPath, path,
	}
	if fi, err := os.Stat(path); err == nil {
		attrs = append(attrs, config.LogKeySizeBytes, fi.Size())
	}
	slog.Info(config.MsgImageSaved, attrs...)
	return nil
}
