package ring

import "github.com/chewxy/math32"

// accelerateDecelerate is the cosine S-curve: f(0)=0, f(1)=1 and a flat
// slope at both ends.
func accelerateDecelerate(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return math32.Cos((t+1)*math32.Pi)/2 + 0.5
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
