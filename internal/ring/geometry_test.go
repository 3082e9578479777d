package ring

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func TestComputeGeometryWideContainer(t *testing.T) {
	g := ComputeGeometry(200, 100)

	if !approx(g.Radius, 30) {
		t.Fatalf("expected radius 30, got %v", g.Radius)
	}
	if !approx(g.EndpointRadius, 5.1) {
		t.Fatalf("expected endpoint radius 5.1, got %v", g.EndpointRadius)
	}
	if !approx(g.StrokeWidth, 3.9) {
		t.Fatalf("expected stroke width 3.9, got %v", g.StrokeWidth)
	}
	if g.Center != (Point{X: 100, Y: 50}) {
		t.Fatalf("unexpected center %+v", g.Center)
	}
	want := Rect{Left: 70, Top: 20, Right: 130, Bottom: 80}
	if !approx(g.Bounds.Left, want.Left) || !approx(g.Bounds.Top, want.Top) ||
		!approx(g.Bounds.Right, want.Right) || !approx(g.Bounds.Bottom, want.Bottom) {
		t.Fatalf("expected bounds %+v, got %+v", want, g.Bounds)
	}
}

func TestComputeGeometryDegenerateSizes(t *testing.T) {
	for _, size := range [][2]float32{{0, 0}, {0, 100}, {-20, 50}, {-1, -1}} {
		g := ComputeGeometry(size[0], size[1])
		if g.Radius != 0 || g.StrokeWidth != 0 || g.EndpointRadius != 0 {
			t.Fatalf("size %v: expected zero layout, got %+v", size, g)
		}
	}
}

func TestEndpointFollowsClockFace(t *testing.T) {
	g := ComputeGeometry(100, 100) // radius 30, center (50,50)

	tests := []struct {
		angle float32
		want  Point
	}{
		{0, Point{X: 50, Y: 20}},
		{90, Point{X: 80, Y: 50}},
		{180, Point{X: 50, Y: 80}},
		{270, Point{X: 20, Y: 50}},
	}
	for _, tt := range tests {
		got := g.Endpoint(tt.angle)
		if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
			t.Errorf("Endpoint(%v) = %+v, want %+v", tt.angle, got, tt.want)
		}
	}
}
