// Package config handles command-line parsing and the ring style file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/olivier-w/ringbar/internal/ring"
	"github.com/pelletier/go-toml/v2"
)

// Color is a ring color that parses from "#RRGGBB" or "#AARRGGBB".
type Color color.NRGBA

// UnmarshalText implements encoding.TextUnmarshaler for go-arg and TOML.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ring.ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = Color(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Color) String() string {
	return ring.FormatColor(color.NRGBA(c))
}

// StyleFile is the TOML layout of a style file. Every key is optional.
type StyleFile struct {
	ProgressColor   *Color `toml:"ProgressColor,omitempty"`
	BackgroundColor *Color `toml:"BackgroundColor,omitempty"`
	EndPointColor   *Color `toml:"EndPointColor,omitempty"`
	TextColor       *Color `toml:"TextColor,omitempty"`
}

// Apply overrides the colors of base that are set in f.
func (f StyleFile) Apply(base ring.Style) ring.Style {
	if f.ProgressColor != nil {
		base.ProgressColor = color.NRGBA(*f.ProgressColor)
	}
	if f.BackgroundColor != nil {
		base.BackgroundColor = color.NRGBA(*f.BackgroundColor)
	}
	if f.EndPointColor != nil {
		base.EndPointColor = color.NRGBA(*f.EndPointColor)
	}
	if f.TextColor != nil {
		base.TextColor = color.NRGBA(*f.TextColor)
	}
	return base
}

// DecodeStyle reads a style file. Unknown keys are rejected.
func DecodeStyle(r io.Reader) (StyleFile, error) {
	var f StyleFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return StyleFile{}, fmt.Errorf("unknown style option (valid: ProgressColor, BackgroundColor, EndPointColor, TextColor):\n%s", strict.String())
		}
		return StyleFile{}, fmt.Errorf("parse style: %w", err)
	}
	return f, nil
}

// LoadStyle reads the style file at path.
func LoadStyle(path string) (StyleFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return StyleFile{}, fmt.Errorf("cannot open style file: %w", err)
	}
	defer fh.Close()

	f, err := DecodeStyle(fh)
	if err != nil {
		return StyleFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Config holds the application configuration
type Config struct {
	Progress   int    `arg:"-p,--progress" default:"75" help:"Target percentage (0-100)"`
	NoAnimate  bool   `arg:"--no-animate" help:"Jump to the target instead of sweeping"`
	Processing bool   `arg:"--processing" help:"Hand over to the processing animation after the opening sweep"`
	Step       int    `arg:"--step" default:"7" help:"Charge added per processing cycle, in percent"`
	FPS        int    `arg:"--fps" default:"60" help:"Frame rate while animating"`
	StylePath  string `arg:"-c,--config" help:"TOML style file"`
	PNG        string `arg:"--png" help:"Write a single PNG frame to this path and exit"`
	Size       int    `arg:"--size" default:"256" help:"PNG edge length in pixels"`
	LogPath    string `arg:"--log" help:"Write logs to this file"`
	Debug      bool   `arg:"--debug" help:"Log state transitions"`

	ProgressColor   *Color `arg:"--progress-color" help:"Arc color (#RRGGBB or #AARRGGBB)"`
	BackgroundColor *Color `arg:"--background-color" help:"Track color"`
	EndPointColor   *Color `arg:"--endpoint-color" help:"End-point marker color"`
	TextColor       *Color `arg:"--text-color" help:"Label color"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "A circular progress ring for the terminal"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "ringbar 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Progress: 75,
		Step:     7,
		FPS:      60,
		Size:     256,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig validates a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Progress < 0 || cfg.Progress > 100 {
		return nil, fmt.Errorf("progress must be between 0 and 100, got %d", cfg.Progress)
	}
	if cfg.Step < 1 || cfg.Step > 100 {
		return nil, fmt.Errorf("step must be between 1 and 100, got %d", cfg.Step)
	}
	if cfg.FPS < 1 || cfg.FPS > 240 {
		return nil, fmt.Errorf("fps must be between 1 and 240, got %d", cfg.FPS)
	}
	if cfg.PNG != "" && cfg.Size < 16 {
		return nil, fmt.Errorf("size must be at least 16, got %d", cfg.Size)
	}
	return cfg, nil
}

// Style resolves the ring colors: defaults, then the style file, then flags.
func (cfg *Config) Style() (ring.Style, error) {
	style := ring.DefaultStyle()
	if cfg.StylePath != "" {
		f, err := LoadStyle(cfg.StylePath)
		if err != nil {
			return ring.Style{}, err
		}
		style = f.Apply(style)
	}
	flags := StyleFile{
		ProgressColor:   cfg.ProgressColor,
		BackgroundColor: cfg.BackgroundColor,
		EndPointColor:   cfg.EndPointColor,
		TextColor:       cfg.TextColor,
	}
	return flags.Apply(style), nil
}
