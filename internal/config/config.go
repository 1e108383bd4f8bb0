package config

import (
	"image/color"
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for remote special-date sources.
var UserAgent = "Go-YearDots/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go YearDots"
	AppID       = "com.github.tartampluch.go-yeardots"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// FilePermPublicR represents -rw-r--r--.
	// The rendered image is consumed by other processes (sync agents, web servers).
	FilePermPublicR fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// TempFilePattern names the scratch file the image is encoded into before rename.
	TempFilePattern = ".yeardots-*.png.tmp"
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Keys
// -----------------------------------------------------------------------------

// Keys are bound through viper without a prefix: the key "special_dates"
// is read from the SPECIAL_DATES variable.
const (
	KeySpecialDates     = "special_dates"
	KeySpecialDatesFile = "special_dates_file"
	KeySpecialDatesURL  = "special_dates_url"
	KeySpecialDatesUser = "special_dates_user"
	KeySpecialDatesPass = "special_dates_password"
	KeyFontPath         = "font_path"
	KeyOutputPath       = "output_path"
	KeyLanguage         = "language"
	KeyShowProgressBar  = "show_progress_bar"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultFontPath        = "fonts/Roboto-Regular.ttf"
	DefaultOutputPath      = "daily_status.png"
	DefaultLanguage        = "en"
	DefaultShowProgressBar = true

	// DefaultSpecialDates is the built-in list used when SPECIAL_DATES is unset.
	// Same "M-D,M-D" syntax as the environment variable.
	DefaultSpecialDates = ""
)

// SupportedLanguages lists the embedded countdown locales (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Canvas
// -----------------------------------------------------------------------------

const (
	CanvasWidth  = 1170
	CanvasHeight = 2532
)

// -----------------------------------------------------------------------------
// Palette
// -----------------------------------------------------------------------------

// These values are matched pixel for pixel by existing wallpapers; do not tweak.
var (
	ColorBackground = color.RGBA{R: 28, G: 28, B: 30, A: 255}
	ColorSpecial    = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	ColorToday      = color.RGBA{R: 255, G: 105, B: 60, A: 255}
	ColorPassed     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorFuture     = color.RGBA{R: 68, G: 68, B: 70, A: 255}
)

// -----------------------------------------------------------------------------
// Grid Layout
// -----------------------------------------------------------------------------

const (
	GridCols       = 15
	GridRows       = 25
	DotRadius      = 18
	DotPadding     = 22
	GridOffsetY    = 100 // Pushes the grid down to leave room for the label.
	SpecialSep     = ","
	MonthDaySep    = "-"
	MonthDayFields = 2
)

// -----------------------------------------------------------------------------
// Label & Progress Bar
// -----------------------------------------------------------------------------

const (
	FontSize          = 40
	FontDPI           = 72
	LabelOffsetBottom = 220 // Label top edge is CanvasHeight - LabelOffsetBottom.

	BarTotalWidth       = 600
	BarBlockHeight      = 24
	BarBlockCount       = 10
	BarBlockGap         = 12
	BarCornerRadius     = 8
	BarOffsetBelowLabel = 80
)

// -----------------------------------------------------------------------------
// Special-Date Sources
// -----------------------------------------------------------------------------

const (
	SourceKindVCard = "vcard"
	SourceKindICal  = "ical"

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"

	// Date layouts accepted in vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyCountdown     = "countdown_days_left" // Requires Count
	TDataCount        = "Count"
	LocalesDir        = "locales"
	LocaleFilePrefix  = "active."
	LocaleFileSuffix  = ".json"
	LocaleFormatJSON  = "json"
	FallbackCountdown = "%dd left"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrFontLoad        = "failed to load font"
	ErrFontParse       = "failed to parse font file"
	ErrFontFace        = "failed to create font face"
	ErrSaveImage       = "failed to save image"
	ErrEncodeImage     = "failed to encode PNG"
	ErrTempFile        = "failed to create temporary image file"
	ErrRenameImage     = "failed to move image into place"
	ErrOutputPathEmpty = "configuration error: output path is empty"
	ErrFontPathEmpty   = "configuration error: font path is empty"
	ErrRender          = "failed to render frame"
	ErrNilCanvas       = "internal error: canvas is not initialized"
	ErrSourceOpen      = "failed to open special-date source"
	ErrSourceParse     = "failed to parse special-date source"
	ErrSourceKind      = "unsupported special-date source"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrDateParse       = "unable to parse date"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Run completed"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgSettingsLoaded  = "Settings loaded"
	MsgFontLoaded      = "Font loaded"
	MsgDayResolved     = "Generating image for day"
	MsgSpecialResolved = "Special dates resolved"
	MsgSkippedToken    = "Skipping malformed special-date token"
	MsgSkippedDate     = "Skipping date that does not exist this year"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedEvent    = "Skipping calendar event without a usable start date"
	MsgSourceFailed    = "Special-date source unavailable, continuing without it"
	MsgSourceLoaded    = "Special-date source loaded"
	MsgGridTruncated   = "Grid has fewer cells than days in the year, last days are not drawn"
	MsgBarFilled       = "Progress bar computed"
	MsgImageSaved      = "Image saved"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLangInvalid     = "Invalid language tag, using default"
	MsgFetchStart      = "Downloading special-date source"
	MsgFetchStatus     = "Server returned error status"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyRunID     = "run_id"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyYear      = "year"
	LogKeyDayOfYear = "day_of_year"
	LogKeyTotalDays = "total_days"
	LogKeyDaysLeft  = "days_left"
	LogKeyCells     = "grid_cells"
	LogKeyFilled    = "filled_blocks"
	LogKeyBlocks    = "total_blocks"
	LogKeySizeBytes = "size_bytes"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompEngine  = "engine"
	CompSource  = "source"
	CompFetcher = "fetcher"
	CompRender  = "render"
	CompI18n    = "i18n"
)
