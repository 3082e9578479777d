package ring

import "image/color"

const (
	// haloGap pads the erase ring around the marker, in density units.
	haloGap = 10
	// labelTextSize is the label size in density units.
	labelTextSize = 12
)

// PaintStyle selects between filling and stroking a shape.
type PaintStyle uint8

const (
	Fill PaintStyle = iota
	Stroke
)

// Cap is the decoration at the ends of a stroked arc.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
)

// Blend is how a paint combines with what is already on the surface.
type Blend uint8

const (
	// BlendNormal paints over the destination.
	BlendNormal Blend = iota
	// BlendErase removes the destination wherever the shape covers it.
	BlendErase
)

// Paint carries the drawing parameters for one primitive.
type Paint struct {
	Color       color.NRGBA
	Style       PaintStyle
	StrokeWidth float32
	Cap         Cap
	Blend       Blend
	AntiAlias   bool
	TextSize    float32
	Bold        bool
}

// FontMetrics are relative to the baseline: Ascent is negative, Descent
// positive.
type FontMetrics struct {
	Ascent  float32
	Descent float32
}

// Surface is the drawing target a Bar renders onto. Angles are in degrees,
// 0 at 3 o'clock, growing clockwise. Text is centered on its x position.
type Surface interface {
	StrokeCircle(center Point, radius float32, p Paint)
	StrokeArc(bounds Rect, startAngle, sweepAngle float32, p Paint)
	FillCircle(center Point, radius float32, p Paint)
	DrawText(text string, at Point, p Paint)
	FontMetrics(p Paint) FontMetrics

	// Layered reports whether the surface can composite the erase blend.
	Layered() bool
	// Density scales density-independent sizes to surface units.
	Density() float32
}

// Draw renders the ring for a width x height container. The layout is
// recomputed on every call. A zero-radius layout draws nothing.
func (b *Bar) Draw(s Surface, width, height float32) {
	g := ComputeGeometry(width, height)
	if g.Radius <= 0 {
		return
	}
	layered := s.Layered()
	density := s.Density()

	background := Paint{
		Color:       b.style.BackgroundColor,
		Style:       Stroke,
		StrokeWidth: g.StrokeWidth,
		AntiAlias:   true,
	}
	progress := Paint{
		Color:       b.style.ProgressColor,
		Style:       Stroke,
		StrokeWidth: g.StrokeWidth,
		Cap:         CapRound,
		AntiAlias:   true,
	}
	endpoint := Paint{
		Color:     b.style.EndPointColor,
		Style:     Fill,
		AntiAlias: true,
	}
	text := Paint{
		Color:     b.style.TextColor,
		Style:     Fill,
		AntiAlias: true,
		TextSize:  0.5 + labelTextSize*density,
		Bold:      true,
	}
	if layered {
		text.Blend = BlendErase
	}

	s.StrokeCircle(g.Center, g.Radius, background)
	s.StrokeArc(g.Bounds, ZeroAngle, b.state.Current, progress)

	angle := b.state.MarkerAngle()
	end := g.Endpoint(angle)
	if layered {
		s.FillCircle(end, haloGap*density+g.EndpointRadius, text)
	}
	s.FillCircle(end, g.EndpointRadius, endpoint)

	fm := s.FontMetrics(text)
	baseline := end.Y + (fm.Descent-fm.Ascent)/2 - fm.Descent
	s.DrawText(Label(angle), Point{X: end.X, Y: baseline}, text)
}
