package engine

// ProgressBarConfig describes the segmented year progress bar.
type ProgressBarConfig struct {
	TotalWidth       float64
	BlockHeight      float64
	BlockCount       int
	BlockGap         float64
	CornerRadius     float64
	OffsetBelowLabel float64
}

// BlockWidth is the width of a single segment.
func (c ProgressBarConfig) BlockWidth() float64 {
	if c.BlockCount <= 0 {
		return 0
	}
	return (c.TotalWidth - float64(c.BlockCount-1)*c.BlockGap) / float64(c.BlockCount)
}

// Segment is one block of the progress bar.
type Segment struct {
	Box    Rect
	Filled bool
}

// ProgressBar is the computed bar geometry.
type ProgressBar struct {
	Filled   int
	Segments []Segment
}

// FilledBlocks returns floor(dayOfYear/totalDays * blockCount).
// Once the year has started at least one block is filled so the bar
// never looks empty.
func FilledBlocks(dayOfYear, totalDays, blockCount int) int {
	if totalDays <= 0 || blockCount <= 0 {
		return 0
	}

	// Integer arithmetic keeps the floor exact where float ratios would not.
	filled := dayOfYear * blockCount / totalDays
	if dayOfYear > 0 && filled == 0 {
		filled = 1
	}
	return min(max(filled, 0), blockCount)
}

// LayoutProgressBar positions the segments left to right starting at origin.
func LayoutProgressBar(cfg ProgressBarConfig, year YearContext, origin Point) ProgressBar {
	filled := FilledBlocks(year.DayOfYear, year.TotalDays, cfg.BlockCount)
	width := cfg.BlockWidth()

	segments := make([]Segment, 0, max(cfg.BlockCount, 0))
	for k := 0; k < cfg.BlockCount; k++ {
		x := origin.X + float64(k)*(width+cfg.BlockGap)
		segments = append(segments, Segment{
			Box:    Rect{X0: x, Y0: origin.Y, X1: x + width, Y1: origin.Y + cfg.BlockHeight},
			Filled: k < filled,
		})
	}
	return ProgressBar{Filled: filled, Segments: segments}
}
