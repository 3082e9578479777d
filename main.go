package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/olivier-w/ringbar/internal/config"
	"github.com/olivier-w/ringbar/internal/render"
	"github.com/olivier-w/ringbar/internal/ring"
	"github.com/olivier-w/ringbar/internal/ui"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the log file, so it is closed on every return path.
func run(cfg *config.Config) error {
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.PNG != "" {
		if err := writeSnapshot(cfg, style, logger); err != nil {
			logger.Error("snapshot failed", "path", cfg.PNG, "error", err)
			return err
		}
		return nil
	}

	model := ui.New(ui.Options{
		Style:      style,
		Progress:   cfg.Progress,
		Animate:    !cfg.NoAnimate,
		Processing: cfg.Processing,
		Step:       cfg.Step,
		FPS:        cfg.FPS,
		Profile:    termenv.EnvColorProfile(),
		Logger:     logger,
	})

	// Only use alt screen if stdout is a TTY
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	return nil
}

// newLogger writes to --log when given; the TUI owns the terminal otherwise.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.LogPath == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// writeSnapshot renders the settled ring once to a PNG file.
func writeSnapshot(cfg *config.Config, style ring.Style, logger *slog.Logger) error {
	bar := ring.New(style, ring.WithLogger(logger))
	bar.SetProgress(cfg.Progress, false)

	canvas := render.NewRaster(cfg.Size, cfg.Size)
	bar.Draw(canvas, canvas.Width(), canvas.Height())

	f, err := os.Create(cfg.PNG)
	if err != nil {
		return fmt.Errorf("cannot create snapshot: %w", err)
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	logger.Info("snapshot written", "path", cfg.PNG, "size", cfg.Size, "label", ring.Label(bar.State().End))
	return nil
}
