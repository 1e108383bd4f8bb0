package engine

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/tartampluch/go-yeardots/internal/config"
)

// Options is the complete static configuration of the image.
type Options struct {
	Canvas            Size
	Background        color.RGBA
	Grid              GridConfig
	Bar               ProgressBarConfig
	LabelOffsetBottom float64 // Label top edge is Canvas.Height - LabelOffsetBottom.
	ShowProgressBar   bool
}

// DefaultOptions returns the phone wallpaper layout.
func DefaultOptions() Options {
	return Options{
		Canvas:     Size{Width: config.CanvasWidth, Height: config.CanvasHeight},
		Background: config.ColorBackground,
		Grid: GridConfig{
			Cols:       config.GridCols,
			Rows:       config.GridRows,
			DotRadius:  config.DotRadius,
			DotPadding: config.DotPadding,
			OffsetY:    config.GridOffsetY,
		},
		Bar: ProgressBarConfig{
			TotalWidth:       config.BarTotalWidth,
			BlockHeight:      config.BarBlockHeight,
			BlockCount:       config.BarBlockCount,
			BlockGap:         config.BarBlockGap,
			CornerRadius:     config.BarCornerRadius,
			OffsetBelowLabel: config.BarOffsetBelowLabel,
		},
		LabelOffsetBottom: config.LabelOffsetBottom,
		ShowProgressBar:   config.DefaultShowProgressBar,
	}
}

// Dot is one classified and positioned day.
type Dot struct {
	Day   int
	State DayState
	Box   Rect
}

// Label is the countdown text. Its horizontal position depends on the
// rendered text width, so only the top edge is fixed here.
type Label struct {
	Text  string
	Top   float64
	Color color.RGBA
}

// Frame is the full drawing plan of one run. It holds no drawing state.
type Frame struct {
	Size        Size
	Background  color.RGBA
	Year        YearContext
	Special     SpecialDaySet
	Dots        []Dot
	Label       Label
	Bar         *ProgressBar // nil when the bar is disabled
	BarRadius   float64
	FilledColor color.RGBA
	EmptyColor  color.RGBA
}

// Generator turns the current instant and the special dates into a Frame.
type Generator struct {
	Clock   Clock
	Options Options

	// FormatCountdown lets the caller inject the localised label.
	FormatCountdown func(daysLeft int) string
}

// NewGenerator creates a Generator with the real clock and default layout.
func NewGenerator() *Generator {
	return &Generator{
		Clock:   RealClock{},
		Options: DefaultOptions(),
	}
}

// Compose reads the clock once and computes every dot, the label and the bar.
func (g *Generator) Compose(dates []MonthDay) Frame {
	clock := g.Clock
	if clock == nil {
		clock = RealClock{}
	}
	opts := g.Options
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	year := ResolveYear(clock.Now())
	log.Info(config.MsgDayResolved,
		config.LogKeyYear, year.Year,
		config.LogKeyDayOfYear, year.DayOfYear,
		config.LogKeyTotalDays, year.TotalDays,
		config.LogKeyDaysLeft, year.DaysLeft)

	special := BuildSpecialDaySet(year.Year, dates)
	log.Info(config.MsgSpecialResolved,
		config.LogKeyCount, special.Len())

	layout := NewGridLayout(opts.Grid, opts.Canvas)
	if opts.Grid.Cells() < year.TotalDays {
		log.Warn(config.MsgGridTruncated,
			config.LogKeyCells, opts.Grid.Cells(),
			config.LogKeyTotalDays, year.TotalDays)
	}

	dots := make([]Dot, 0, year.TotalDays)
	for day := 1; day <= year.TotalDays; day++ {
		box, ok := layout.DotBox(day, year.TotalDays)
		if !ok {
			break // row-major order: every later day is off-grid too
		}
		dots = append(dots, Dot{
			Day:   day,
			State: Classify(day, year.DayOfYear, special),
			Box:   box,
		})
	}

	labelTop := float64(opts.Canvas.Height) - opts.LabelOffsetBottom
	frame := Frame{
		Size:       opts.Canvas,
		Background: opts.Background,
		Year:       year,
		Special:    special,
		Dots:       dots,
		Label: Label{
			Text:  g.countdown(year.DaysLeft),
			Top:   labelTop,
			Color: config.ColorToday,
		},
		BarRadius:   opts.Bar.CornerRadius,
		FilledColor: config.ColorToday,
		EmptyColor:  config.ColorFuture,
	}

	if opts.ShowProgressBar {
		origin := Point{
			X: (float64(opts.Canvas.Width) - opts.Bar.TotalWidth) / 2,
			Y: labelTop + opts.Bar.OffsetBelowLabel,
		}
		bar := LayoutProgressBar(opts.Bar, year, origin)
		frame.Bar = &bar
		log.Debug(config.MsgBarFilled,
			config.LogKeyFilled, bar.Filled,
			config.LogKeyBlocks, opts.Bar.BlockCount)
	}

	return frame
}

func (g *Generator) countdown(daysLeft int) string {
	if g.FormatCountdown != nil {
		return g.FormatCountdown(daysLeft)
	}
	return fmt.Sprintf(config.FallbackCountdown, daysLeft)
}
