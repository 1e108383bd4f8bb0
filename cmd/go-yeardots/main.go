package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/tartampluch/go-yeardots/internal/config"
	"github.com/tartampluch/go-yeardots/internal/engine"
	"github.com/tartampluch/go-yeardots/internal/locale"
	"github.com/tartampluch/go-yeardots/internal/render"
)

// main delegates to runMain so deferred calls (closing the log file) run
// before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain parses flags, sets up logging and maps the run result to an exit code.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// The only blocking step is the optional remote special-date download.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, config.Load(viper.New())); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run executes one full pass: font, special dates, composition, drawing, save.
func run(ctx context.Context, settings config.Settings) error {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompMain)

	if err := settings.Validate(); err != nil {
		return err
	}
	log.Debug(config.MsgSettingsLoaded,
		config.LogKeyPath, settings.OutputPath,
		config.LogKeyLang, settings.Language)

	// Font first: a missing font must abort before anything is written.
	face, err := render.LoadFontFace(settings.FontPath, config.FontSize)
	if err != nil {
		return err
	}
	defer func() { _ = face.Close() }()
	log.Debug(config.MsgFontLoaded, config.LogKeyFile, settings.FontPath)

	loader := &engine.SpecialDateLoader{Fetcher: engine.NewHTTPFetcher()}
	dates := loader.Load(ctx, engine.SourceConfig{
		Inline: settings.SpecialDates,
		File:   settings.SpecialFile,
		URL:    settings.SpecialURL,
		User:   settings.SpecialUser,
		Pass:   settings.SpecialPass,
	})
	if err := ctx.Err(); err != nil {
		return err
	}

	translator := locale.New(settings.Language)

	gen := engine.NewGenerator()
	gen.Options.ShowProgressBar = settings.ShowProgressBar
	gen.FormatCountdown = translator.Countdown

	frame := gen.Compose(dates)

	canvas := render.NewGGCanvas(frame.Size, face)
	if err := render.Draw(canvas, frame); err != nil {
		return fmt.Errorf("%s: %w", config.ErrRender, err)
	}
	if err := render.SavePNG(canvas, settings.OutputPath); err != nil {
		return err
	}

	log.Debug(config.MsgAppStop, config.LogKeyDuration, time.Since(start).Milliseconds())
	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details plus a per-run correlation id,
// since scheduled runs all share the same log destination.
func logStartupInfo() {
	runID := uuid.NewString()
	slog.SetDefault(slog.Default().With(config.LogKeyRunID, runID))

	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	writers = append(writers, os.Stdout)

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC keeps only the latest run.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
