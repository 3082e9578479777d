package ring

import (
	"strings"
	"testing"
)

type drawCall struct {
	op     string
	center Point
	radius float32
	start  float32
	sweep  float32
	text   string
	paint  Paint
}

type recordingSurface struct {
	layered bool
	calls   []drawCall
}

func (r *recordingSurface) StrokeCircle(c Point, radius float32, p Paint) {
	r.calls = append(r.calls, drawCall{op: "strokeCircle", center: c, radius: radius, paint: p})
}

func (r *recordingSurface) StrokeArc(bounds Rect, start, sweep float32, p Paint) {
	c := Point{X: (bounds.Left + bounds.Right) / 2, Y: (bounds.Top + bounds.Bottom) / 2}
	r.calls = append(r.calls, drawCall{op: "strokeArc", center: c, radius: (bounds.Right - bounds.Left) / 2, start: start, sweep: sweep, paint: p})
}

func (r *recordingSurface) FillCircle(c Point, radius float32, p Paint) {
	r.calls = append(r.calls, drawCall{op: "fillCircle", center: c, radius: radius, paint: p})
}

func (r *recordingSurface) DrawText(text string, at Point, p Paint) {
	r.calls = append(r.calls, drawCall{op: "text", center: at, text: text, paint: p})
}

func (r *recordingSurface) FontMetrics(Paint) FontMetrics {
	return FontMetrics{Ascent: -9, Descent: 3}
}

func (r *recordingSurface) Layered() bool    { return r.layered }
func (r *recordingSurface) Density() float32 { return 1 }

func (r *recordingSurface) ops() string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.op
	}
	return strings.Join(names, ",")
}

func TestDrawLayeredSequence(t *testing.T) {
	b := New(DefaultStyle())
	b.SetProgress(75, false)

	s := &recordingSurface{layered: true}
	b.Draw(s, 200, 200)

	if got := s.ops(); got != "strokeCircle,strokeArc,fillCircle,fillCircle,text" {
		t.Fatalf("unexpected draw order %s", got)
	}

	bg, arc, halo, marker, label := s.calls[0], s.calls[1], s.calls[2], s.calls[3], s.calls[4]
	if bg.paint.Cap != CapButt || bg.paint.Style != Stroke || bg.paint.Color != DefaultStyle().BackgroundColor {
		t.Fatalf("unexpected background paint %+v", bg.paint)
	}
	if arc.start != ZeroAngle || arc.sweep != 270 || arc.paint.Cap != CapRound {
		t.Fatalf("unexpected arc %+v", arc)
	}
	if !approx(arc.radius, 60) {
		t.Fatalf("expected arc radius 60, got %v", arc.radius)
	}
	if halo.paint.Blend != BlendErase || !approx(halo.radius, 10+0.17*60) {
		t.Fatalf("unexpected halo %+v", halo)
	}
	if marker.paint.Blend != BlendNormal || marker.paint.Color != DefaultStyle().EndPointColor {
		t.Fatalf("unexpected marker %+v", marker)
	}
	// 75% sits at 9 o'clock
	if !approx(marker.center.X, 40) || !approx(marker.center.Y, 100) {
		t.Fatalf("unexpected marker center %+v", marker.center)
	}
	if label.text != "75%" || label.paint.Blend != BlendErase {
		t.Fatalf("unexpected label %+v", label)
	}
	if !approx(label.center.Y, 100+(3+9)/2-3) {
		t.Fatalf("expected label baseline offset, got %v", label.center.Y)
	}
}

func TestDrawCapabilityLimitedSurfaceSkipsHalo(t *testing.T) {
	b := New(DefaultStyle())
	b.SetProgress(30, false)

	s := &recordingSurface{}
	b.Draw(s, 120, 80)

	if got := s.ops(); got != "strokeCircle,strokeArc,fillCircle,text" {
		t.Fatalf("unexpected draw order %s", got)
	}
	if label := s.calls[3]; label.paint.Blend != BlendNormal || label.text != "30%" {
		t.Fatalf("expected opaque label, got %+v", label)
	}
}

func TestDrawMarkerTracksSweepWhileOpening(t *testing.T) {
	b := New(DefaultStyle())
	b.SetProgress(100, true)
	b.Advance(epoch)
	b.Advance(epoch.Add(OpenDuration / 2))

	s := &recordingSurface{}
	b.Draw(s, 100, 100)
	if label := s.calls[len(s.calls)-1]; label.text != "50%" {
		t.Fatalf("expected label to follow the sweep, got %q", label.text)
	}
}

func TestDrawZeroSizeDrawsNothing(t *testing.T) {
	b := New(DefaultStyle())
	b.SetProgress(50, false)

	s := &recordingSurface{layered: true}
	b.Draw(s, 0, 0)
	b.Draw(s, -10, 40)
	if len(s.calls) != 0 {
		t.Fatalf("expected no draw calls, got %s", s.ops())
	}

	b.Draw(s, 40, 40)
	if len(s.calls) == 0 {
		t.Fatal("expected drawing once the size is valid")
	}
}
