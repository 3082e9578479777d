package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/olivier-w/ringbar/internal/ring"
)

// progressPalette is what the color key cycles through after the
// configured color.
var progressPalette = []color.NRGBA{
	{R: 0xFF, G: 0x8C, A: 0xff},
	{R: 0x14, G: 0xFF, B: 0xA1, A: 0xff},
	{R: 0xBC, G: 0x3F, B: 0xBC, A: 0xff},
	{R: 0xE5, G: 0xE5, B: 0x10, A: 0xff},
}

// percentOf converts a ring angle back to a whole percentage in 0-100.
func percentOf(angle float32) int {
	p := int(math.Round(100 * float64(angle) / ring.FullAngle))
	return min(max(p, 0), 100)
}

func renderStatus(s ring.AngleState, animate bool) string {
	mode := modeOf(s)
	text := fmt.Sprintf("%s %s", mode.Icon(), mode)
	if animate {
		text += "  [animated]"
	}
	return text
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
