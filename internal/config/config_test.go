package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-yeardots/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"DefaultFontPath", config.DefaultFontPath},
		{"DefaultOutputPath", config.DefaultOutputPath},
		{"FallbackCountdown", config.FallbackCountdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-YearDots/"), "UserAgent must start with AppName/")
}

// TestGrid_FitsLeapYear guards the capacity of the default grid.
// A smaller grid would silently drop the last days of the year.
func TestGrid_FitsLeapYear(t *testing.T) {
	assert.GreaterOrEqual(t, config.GridCols*config.GridRows, 366)

	gridWidth := config.GridCols*2*config.DotRadius + (config.GridCols-1)*config.DotPadding
	gridHeight := config.GridRows*2*config.DotRadius + (config.GridRows-1)*config.DotPadding
	assert.LessOrEqual(t, gridWidth, config.CanvasWidth, "Grid must fit horizontally")
	assert.LessOrEqual(t, gridHeight+config.GridOffsetY, config.CanvasHeight, "Grid must fit vertically")
}

// TestPalette_Exact pins the colours existing wallpapers depend on.
func TestPalette_Exact(t *testing.T) {
	assert.Equal(t, [3]uint8{28, 28, 30}, rgb(config.ColorBackground.R, config.ColorBackground.G, config.ColorBackground.B))
	assert.Equal(t, [3]uint8{255, 215, 0}, rgb(config.ColorSpecial.R, config.ColorSpecial.G, config.ColorSpecial.B))
	assert.Equal(t, [3]uint8{255, 105, 60}, rgb(config.ColorToday.R, config.ColorToday.G, config.ColorToday.B))
	assert.Equal(t, [3]uint8{255, 255, 255}, rgb(config.ColorPassed.R, config.ColorPassed.G, config.ColorPassed.B))
	assert.Equal(t, [3]uint8{68, 68, 70}, rgb(config.ColorFuture.R, config.ColorFuture.G, config.ColorFuture.B))
}

func rgb(r, g, b uint8) [3]uint8 { return [3]uint8{r, g, b} }

func TestLoad_Defaults(t *testing.T) {
	// Clear anything inherited from the developer's shell.
	for _, k := range []string{"SPECIAL_DATES", "SPECIAL_DATES_FILE", "SPECIAL_DATES_URL", "FONT_PATH", "OUTPUT_PATH", "LANGUAGE", "SHOW_PROGRESS_BAR"} {
		t.Setenv(k, "")
	}

	s := config.Load(viper.New())

	assert.Equal(t, config.DefaultFontPath, s.FontPath)
	assert.Equal(t, config.DefaultOutputPath, s.OutputPath)
	assert.Equal(t, config.DefaultLanguage, s.Language)
	assert.True(t, s.ShowProgressBar)
	assert.Empty(t, s.SpecialFile)
	assert.Empty(t, s.SpecialURL)
	require.NoError(t, s.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SPECIAL_DATES", "3-2, 4-29")
	t.Setenv("SPECIAL_DATES_FILE", " /tmp/contacts.vcf ")
	t.Setenv("SPECIAL_DATES_URL", "https://example.com/cal.ics")
	t.Setenv("SPECIAL_DATES_USER", "alice")
	t.Setenv("SPECIAL_DATES_PASSWORD", "secret")
	t.Setenv("FONT_PATH", "/usr/share/fonts/custom.ttf")
	t.Setenv("OUTPUT_PATH", "out/wallpaper.png")
	t.Setenv("LANGUAGE", " FR ")
	t.Setenv("SHOW_PROGRESS_BAR", "false")

	s := config.Load(viper.New())

	assert.Equal(t, "3-2, 4-29", s.SpecialDates, "Raw token string is parsed by the engine, not here")
	assert.Equal(t, "/tmp/contacts.vcf", s.SpecialFile)
	assert.Equal(t, "https://example.com/cal.ics", s.SpecialURL)
	assert.Equal(t, "alice", s.SpecialUser)
	assert.Equal(t, "secret", s.SpecialPass)
	assert.Equal(t, "/usr/share/fonts/custom.ttf", s.FontPath)
	assert.Equal(t, "out/wallpaper.png", s.OutputPath)
	assert.Equal(t, "fr", s.Language)
	assert.False(t, s.ShowProgressBar)
}

func TestLoad_NilViper(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "nil.png")
	s := config.Load(nil)
	assert.Equal(t, "nil.png", s.OutputPath)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       config.Settings
		wantErr string
	}{
		{"Valid", config.Settings{FontPath: "f.ttf", OutputPath: "o.png"}, ""},
		{"Missing Font", config.Settings{OutputPath: "o.png"}, config.ErrFontPathEmpty},
		{"Missing Output", config.Settings{FontPath: "f.ttf"}, config.ErrOutputPathEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
