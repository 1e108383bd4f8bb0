// Package locale renders the countdown label in the configured language.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-yeardots/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves label strings for one language.
type Translator struct {
	Lang      string
	Available []string

	localizer *i18n.Localizer
}

// New loads the embedded locale files and selects lang.
// Unknown or malformed languages fall back to English.
func New(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFormatJSON, json.Unmarshal)

	t := &Translator{Lang: config.DefaultLanguage}
	t.Available = loadLocales(bundle)

	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		t.Lang = base.String()
	} else if lang != "" {
		slog.Warn(config.MsgLangInvalid,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, lang,
			config.LogKeyError, err)
	}

	t.localizer = i18n.NewLocalizer(bundle, t.Lang, config.DefaultLanguage)
	return t
}

// loadLocales registers every active.<lang>.json file and returns the languages found.
func loadLocales(bundle *i18n.Bundle) []string {
	entries, err := localeFS.ReadDir(config.LocalesDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err)
		return nil
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocaleFilePrefix) || !strings.HasSuffix(name, config.LocaleFileSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, config.LocaleFilePrefix), config.LocaleFileSuffix)
		if _, err := bundle.LoadMessageFileFS(localeFS, config.LocalesDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err)
			continue
		}

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code)
		langs = append(langs, code)
	}
	return langs
}

// Countdown returns the "N days left" label.
func (t *Translator) Countdown(daysLeft int) string {
	if t == nil || t.localizer == nil {
		return fmt.Sprintf(config.FallbackCountdown, daysLeft)
	}

	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyCountdown,
		PluralCount:  daysLeft,
		TemplateData: map[string]int{config.TDataCount: daysLeft},
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, config.TKeyCountdown,
			config.LogKeyError, err)
		return fmt.Sprintf(config.FallbackCountdown, daysLeft)
	}
	return msg
}
