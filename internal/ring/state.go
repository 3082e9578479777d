package ring

import (
	"strconv"

	"github.com/chewxy/math32"
)

// FullAngle is one revolution in degrees.
const FullAngle = 360

// AngleState is what the ring currently shows.
//
// Current drives the drawn arc. End is the settled angle used for the
// marker and the label once the opening sweep is over.
type AngleState struct {
	Current    float32
	End        float32
	Opening    bool
	Processing bool
}

// MarkerAngle is the angle the end-point marker and label follow.
func (s AngleState) MarkerAngle() float32 {
	if s.Opening {
		return s.Current
	}
	return s.End
}

// PercentToAngle maps 0-100 onto 0-360 degrees.
func PercentToAngle(percent int) float32 {
	return float32(percent) * FullAngle / 100
}

// Label formats angle as a rounded percentage, e.g. "75%".
func Label(angle float32) string {
	return strconv.Itoa(int(math32.Round(100*angle/FullAngle))) + "%"
}
