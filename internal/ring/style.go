package ring

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style holds the four colors a ring is drawn with.
type Style struct {
	ProgressColor   color.NRGBA
	BackgroundColor color.NRGBA
	EndPointColor   color.NRGBA
	TextColor       color.NRGBA
}

// DefaultStyle is a deep blue ring on a translucent track with a green label.
func DefaultStyle() Style {
	return Style{
		ProgressColor:   color.NRGBA{R: 0x22, G: 0x33, B: 0x99, A: 0xff},
		BackgroundColor: color.NRGBA{R: 0x22, G: 0x33, B: 0x99, A: 0x55},
		EndPointColor:   color.NRGBA{R: 0x22, G: 0x33, B: 0x99, A: 0xff},
		TextColor:       color.NRGBA{G: 0xff, A: 0xff},
	}
}

// ParseColor accepts "#RRGGBB" and "#AARRGGBB".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff << 24
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// FormatColor is the inverse of ParseColor, always with an alpha byte.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}
