package ring

import "github.com/chewxy/math32"

// Layout ratios relative to the container and to the ring radius.
const (
	CircleRatio   = 0.6
	EndpointRatio = 0.17
	StrokeRatio   = 0.13
)

// ZeroAngle is where every sweep starts: 12 o'clock, in surface degrees
// (0 = 3 o'clock, clockwise positive).
const ZeroAngle = -90

// Point is a position on a drawing surface.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned box on a drawing surface.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Geometry is the ring layout for one container size.
type Geometry struct {
	Radius         float32
	Center         Point
	EndpointRadius float32
	StrokeWidth    float32
	Bounds         Rect
}

// ComputeGeometry lays the ring out inside a width x height container.
// Non-positive sizes produce a zero radius.
func ComputeGeometry(width, height float32) Geometry {
	width = math32.Max(width, 0)
	height = math32.Max(height, 0)

	r := math32.Min(CircleRatio*width, CircleRatio*height) / 2
	c := Point{X: width / 2, Y: height / 2}
	return Geometry{
		Radius:         r,
		Center:         c,
		EndpointRadius: EndpointRatio * r,
		StrokeWidth:    StrokeRatio * r,
		Bounds: Rect{
			Left:   c.X - r,
			Top:    c.Y - r,
			Right:  c.X + r,
			Bottom: c.Y + r,
		},
	}
}

// Endpoint returns the center of the end-point marker for a sweep of angle
// degrees from ZeroAngle.
func (g Geometry) Endpoint(angle float32) Point {
	rad := angle * math32.Pi / 180
	return Point{
		X: g.Center.X + math32.Sin(rad)*g.Radius,
		Y: g.Center.Y - math32.Cos(rad)*g.Radius,
	}
}
