package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the per-deployment values read from the environment.
// Everything else about the image is fixed by the constants above.
type Settings struct {
	SpecialDates    string // "M-D" tokens separated by commas
	SpecialFile     string // Optional .vcf/.vcard/.ics file
	SpecialURL      string // Optional remote .vcf/.ics document
	SpecialUser     string
	SpecialPass     string
	FontPath        string
	OutputPath      string
	Language        string
	ShowProgressBar bool
}

// Load binds the environment variables to v and returns the resolved settings.
// A nil viper instance uses a fresh one.
func Load(v *viper.Viper) Settings {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault(KeySpecialDates, DefaultSpecialDates)
	v.SetDefault(KeyFontPath, DefaultFontPath)
	v.SetDefault(KeyOutputPath, DefaultOutputPath)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyShowProgressBar, DefaultShowProgressBar)

	for _, key := range []string{
		KeySpecialDates,
		KeySpecialDatesFile,
		KeySpecialDatesURL,
		KeySpecialDatesUser,
		KeySpecialDatesPass,
		KeyFontPath,
		KeyOutputPath,
		KeyLanguage,
		KeyShowProgressBar,
	} {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key)
	}

	return Settings{
		SpecialDates:    v.GetString(KeySpecialDates),
		SpecialFile:     strings.TrimSpace(v.GetString(KeySpecialDatesFile)),
		SpecialURL:      strings.TrimSpace(v.GetString(KeySpecialDatesURL)),
		SpecialUser:     v.GetString(KeySpecialDatesUser),
		SpecialPass:     v.GetString(KeySpecialDatesPass),
		FontPath:        strings.TrimSpace(v.GetString(KeyFontPath)),
		OutputPath:      strings.TrimSpace(v.GetString(KeyOutputPath)),
		Language:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLanguage))),
		ShowProgressBar: v.GetBool(KeyShowProgressBar),
	}
}

// Validate reports settings that make a run impossible.
func (s Settings) Validate() error {
	if s.FontPath == "" {
		return errors.New(ErrFontPathEmpty)
	}
	if s.OutputPath == "" {
		return errors.New(ErrOutputPathEmpty)
	}
	return nil
}
