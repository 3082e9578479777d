package ui

import "github.com/olivier-w/ringbar/internal/ring"

// Mode is what the ring is currently doing.
type Mode int

const (
	ModeIdle Mode = iota
	ModeOpening
	ModeProcessing
)

func modeOf(s ring.AngleState) Mode {
	switch {
	case s.Processing:
		return ModeProcessing
	case s.Opening:
		return ModeOpening
	default:
		return ModeIdle
	}
}

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOpening:
		return "opening"
	case ModeProcessing:
		return "processing"
	default:
		return "idle"
	}
}

// Icon returns a visual indicator for the mode.
func (m Mode) Icon() string {
	switch m {
	case ModeOpening:
		return "◔"
	case ModeProcessing:
		return "↻"
	default:
		return "●"
	}
}
