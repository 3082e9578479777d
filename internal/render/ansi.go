package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ansiState skips escape sequences when consecutive cells share colors.
type ansiState struct {
	profile termenv.Profile
	current string
}

func newANSIState(p termenv.Profile) ansiState {
	return ansiState{profile: p}
}

func (s *ansiState) set(sb *strings.Builder, fg, bg colorful.Color, withBg bool) {
	if s.profile == termenv.Ascii {
		return
	}
	seq := s.profile.Color(fg.Hex()).Sequence(false)
	if withBg {
		seq += ";" + s.profile.Color(bg.Hex()).Sequence(true)
	}
	if seq == s.current {
		return
	}
	if s.current != "" {
		sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}
	sb.WriteString(termenv.CSI + seq + "m")
	s.current = seq
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == termenv.Ascii || s.current == "" {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.current = ""
}
