package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-yeardots/internal/config"
)

// maxConsecutiveDecodeErrors stops decoding a stream that never recovers.
const maxConsecutiveDecodeErrors = 64

// SourceConfig lists where special dates come from.
type SourceConfig struct {
	Inline string // "M-D,M-D" tokens
	File   string // Local .vcf, .vcard or .ics
	URL    string // Remote document, vCard unless the path ends in .ics
	User   string
	Pass   string
}

// SpecialDateLoader gathers special dates from every configured source.
type SpecialDateLoader struct {
	Fetcher DocumentFetcher
}

// Load returns the concatenated dates of all sources, in the order
// inline, file, URL. A source that cannot be read is logged and skipped.
func (l *SpecialDateLoader) Load(ctx context.Context, cfg SourceConfig) []MonthDay {
	dates := ParseSpecialDates(cfg.Inline)

	if cfg.File != "" {
		fileDates, err := l.loadFile(cfg.File)
		dates = l.merge(ctx, dates, fileDates, err, config.LogKeyFile, cfg.File)
	}

	if cfg.URL != "" {
		urlDates, err := l.loadURL(ctx, cfg)
		dates = l.merge(ctx, dates, urlDates, err, config.LogKeyURL, redactURL(cfg.URL))
	}

	return dates
}

func (l *SpecialDateLoader) merge(ctx context.Context, dates, extra []MonthDay, err error, key, where string) []MonthDay {
	if err != nil {
		slog.WarnContext(ctx, config.MsgSourceFailed,
			config.LogKeyComponent, config.CompSource,
			key, where,
			config.LogKeyError, err)
		return dates
	}
	slog.InfoContext(ctx, config.MsgSourceLoaded,
		config.LogKeyComponent, config.CompSource,
		key, where,
		config.LogKeyCount, len(extra))
	return append(dates, extra...)
}

func (l *SpecialDateLoader) loadFile(name string) ([]MonthDay, error) {
	kind, ok := kindFromPath(name)
	if !ok {
		return nil, fmt.Errorf("%s: %q", config.ErrSourceKind, filepath.Ext(name))
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSourceOpen, err)
	}
	defer func() { _ = f.Close() }()

	return ReadSpecialDates(f, kind)
}

func (l *SpecialDateLoader) loadURL(ctx context.Context, cfg SourceConfig) ([]MonthDay, error) {
	if l.Fetcher == nil {
		return nil, errors.New(config.ErrFetcherMissing)
	}

	kind := config.SourceKindVCard
	if u, err := url.Parse(cfg.URL); err == nil {
		if k, ok := kindFromPath(path.Clean(u.Path)); ok {
			kind = k
		}
	}

	rc, err := l.Fetcher.Fetch(ctx, cfg.URL, cfg.User, cfg.Pass)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSourceOpen, err)
	}
	defer func() { _ = rc.Close() }()

	return ReadSpecialDates(rc, kind)
}

func kindFromPath(p string) (string, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case config.ExtVCF, config.ExtVCard:
		return config.SourceKindVCard, true
	case config.ExtICS:
		return config.SourceKindICal, true
	default:
		return "", false
	}
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return safeURL(u)
}

// ReadSpecialDates decodes r as kind (config.SourceKindVCard or
// config.SourceKindICal). Entries without a usable date are skipped.
func ReadSpecialDates(r io.Reader, kind string) ([]MonthDay, error) {
	switch kind {
	case config.SourceKindVCard:
		return readVCardDates(r)
	case config.SourceKindICal:
		return readICalDates(r)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrSourceKind, kind)
	}
}

// readVCardDates collects the BDAY of every card.
func readVCardDates(r io.Reader) ([]MonthDay, error) {
	decoder := vcard.NewDecoder(r)
	var dates []MonthDay
	failures := 0

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			failures++
			if failures >= maxConsecutiveDecodeErrors {
				return dates, fmt.Errorf("%s: %w", config.ErrSourceParse, err)
			}
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompSource,
				config.LogKeyError, err)
			continue
		}
		failures = 0

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		md, err := parseBirthday(bday.Value)
		if err != nil {
			name := ""
			if fn := card.Get(config.VCardFN); fn != nil {
				name = fn.Value
			}
			slog.Debug(config.MsgSkippedToken,
				config.LogKeyComponent, config.CompSource,
				config.LogKeyName, name,
				config.LogKeyValue, bday.Value)
			continue
		}
		dates = append(dates, md)
	}
	return dates, nil
}

// parseBirthday handles the full and year-less vCard date formats.
func parseBirthday(value string) (MonthDay, error) {
	layouts := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
		config.DateFormatNoYearD,
		config.DateFormatNoYearB,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return MonthDay{Month: t.Month(), Day: t.Day()}, nil
		}
	}
	return MonthDay{}, errors.New(config.ErrDateParse)
}

// readICalDates collects the start day of every VEVENT in every calendar of r.
func readICalDates(r io.Reader) ([]MonthDay, error) {
	decoder := ical.NewDecoder(r)
	var dates []MonthDay

	for {
		cal, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Calendar streams cannot resync mid-component, keep what we have.
			if len(dates) > 0 {
				slog.Warn(config.MsgSkippedEvent,
					config.LogKeyComponent, config.CompSource,
					config.LogKeyError, err)
				break
			}
			return nil, fmt.Errorf("%s: %w", config.ErrSourceParse, err)
		}

		for _, event := range cal.Events() {
			start, err := event.DateTimeStart(time.UTC)
			if err != nil || start.IsZero() {
				slog.Debug(config.MsgSkippedEvent,
					config.LogKeyComponent, config.CompSource,
					config.LogKeyError, err)
				continue
			}
			dates = append(dates, MonthDay{Month: start.Month(), Day: start.Day()})
		}
	}
	return dates, nil
}
