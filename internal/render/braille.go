// Package render provides ring.Surface implementations: a braille terminal
// canvas and an RGBA raster for PNG snapshots.
package render

import (
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/olivier-w/ringbar/internal/ring"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// brailleDensity maps one density-independent unit onto dots.
const brailleDensity = 0.25

type dot struct {
	set bool
	c   colorful.Color
}

type textCell struct {
	r     rune
	c     colorful.Color
	erase bool
}

// Braille is a terminal canvas where every cell is a 2x4 dot grid. Surface
// coordinates are in dots.
type Braille struct {
	cols, rows int
	dots       []dot
	text       map[int]textCell

	profile  termenv.Profile
	backdrop colorful.Color
}

// BrailleOption configures a Braille canvas.
type BrailleOption func(*Braille)

// WithProfile overrides the detected terminal color profile.
func WithProfile(p termenv.Profile) BrailleOption {
	return func(b *Braille) { b.profile = p }
}

// WithBackdrop sets the color translucent paints are composited over.
func WithBackdrop(c color.Color) BrailleOption {
	return func(b *Braille) {
		if cf, ok := colorful.MakeColor(c); ok {
			b.backdrop = cf
		}
	}
}

// NewBraille creates a blank canvas of cols x rows terminal cells.
func NewBraille(cols, rows int, opts ...BrailleOption) *Braille {
	cols = max(cols, 0)
	rows = max(rows, 0)
	b := &Braille{
		cols:    cols,
		rows:    rows,
		dots:    make([]dot, cols*2*rows*4),
		text:    make(map[int]textCell),
		profile: termenv.EnvColorProfile(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Width is the canvas width in dots.
func (b *Braille) Width() float32 { return float32(b.cols * 2) }

// Height is the canvas height in dots.
func (b *Braille) Height() float32 { return float32(b.rows * 4) }

// Layered is false on terminals without color, where a cut-out label would
// be unreadable.
func (b *Braille) Layered() bool { return b.profile != termenv.Ascii }

func (b *Braille) Density() float32 { return brailleDensity }

// FontMetrics describes one cell: three dot rows above the baseline, one
// below.
func (b *Braille) FontMetrics(ring.Paint) ring.FontMetrics {
	return ring.FontMetrics{Ascent: -3, Descent: 1}
}

func (b *Braille) StrokeCircle(center ring.Point, radius float32, p ring.Paint) {
	half := strokeHalf(p)
	b.fill(center, radius+half, p, func(x, y, d float32) bool {
		return math32.Abs(d-radius) <= half
	})
}

func (b *Braille) StrokeArc(bounds ring.Rect, start, sweep float32, p ring.Paint) {
	if sweep <= 0 {
		return
	}
	center := ring.Point{X: (bounds.Left + bounds.Right) / 2, Y: (bounds.Top + bounds.Bottom) / 2}
	radius := (bounds.Right - bounds.Left) / 2
	half := strokeHalf(p)
	first := arcPoint(center, radius, start)
	last := arcPoint(center, radius, start+sweep)

	b.fill(center, radius+half, p, func(x, y, d float32) bool {
		if math32.Abs(d-radius) <= half && inSweep(center, x, y, start, sweep) {
			return true
		}
		if p.Cap == ring.CapRound && sweep < ring.FullAngle {
			return distance(first, x, y) <= half || distance(last, x, y) <= half
		}
		return false
	})
}

func (b *Braille) FillCircle(center ring.Point, radius float32, p ring.Paint) {
	if radius <= 0 {
		return
	}
	b.fill(center, radius, p, func(x, y, d float32) bool {
		return d <= radius
	})
}

// DrawText places text in the cell row holding the middle of the glyph box,
// centered on at.X. An erase paint cuts the glyphs out of whatever the cells
// already show.
func (b *Braille) DrawText(text string, at ring.Point, p ring.Paint) {
	fm := b.FontMetrics(p)
	row := int(math32.Floor((at.Y + (fm.Ascent+fm.Descent)/2) / 4))
	if row < 0 || row >= b.rows {
		return
	}
	runes := []rune(text)
	col := int(math32.Round(at.X/2 - float32(len(runes))/2))
	c := b.composite(b.backdrop, p.Color)
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= b.cols {
			continue
		}
		b.text[row*b.cols+cc] = textCell{r: r, c: c, erase: p.Blend == ring.BlendErase}
	}
}

// fill visits every dot center within reach of center and paints those
// accepted by hit.
func (b *Braille) fill(center ring.Point, reach float32, p ring.Paint, hit func(x, y, d float32) bool) {
	w, h := b.cols*2, b.rows*4
	if w == 0 || h == 0 {
		return
	}
	x0 := max(int(math32.Floor(center.X-reach)), 0)
	x1 := min(int(math32.Ceil(center.X+reach)), w-1)
	y0 := max(int(math32.Floor(center.Y-reach)), 0)
	y1 := min(int(math32.Ceil(center.Y+reach)), h-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			if !hit(px, py, distance(center, px, py)) {
				continue
			}
			d := &b.dots[y*w+x]
			if p.Blend == ring.BlendErase {
				*d = dot{}
				continue
			}
			under := b.backdrop
			if d.set {
				under = d.c
			}
			*d = dot{set: true, c: b.composite(under, p.Color)}
		}
	}
}

// composite lays c over under by its alpha.
func (b *Braille) composite(under colorful.Color, c color.NRGBA) colorful.Color {
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return under.BlendRgb(top, float64(c.A)/255).Clamped()
}

// Render returns the canvas as colored braille lines.
func (b *Braille) Render() string {
	rows := make([]string, b.rows)
	w := b.cols * 2
	for row := range b.rows {
		var line strings.Builder
		ansi := newANSIState(b.profile)
		for col := range b.cols {
			var pattern uint
			var sum colorful.Color
			n := 0
			for dx := range 2 {
				for dy := range 4 {
					d := b.dots[(row*4+dy)*w+col*2+dx]
					if !d.set {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					sum.R += d.c.R
					sum.G += d.c.G
					sum.B += d.c.B
					n++
				}
			}
			var cellColor colorful.Color
			if n > 0 {
				cellColor = colorful.Color{R: sum.R / float64(n), G: sum.G / float64(n), B: sum.B / float64(n)}
			}

			if t, ok := b.text[row*b.cols+col]; ok {
				switch {
				case t.erase && n == 0:
					// nothing to cut out of
					ansi.reset(&line)
					line.WriteByte(' ')
				case t.erase:
					// cut-out: the backdrop shows through the fill
					ansi.set(&line, b.backdrop, cellColor, true)
					line.WriteRune(t.r)
				default:
					ansi.set(&line, t.c, colorful.Color{}, false)
					line.WriteRune(t.r)
				}
				continue
			}
			if n == 0 {
				ansi.reset(&line)
				line.WriteByte(' ')
				continue
			}
			ansi.set(&line, cellColor, colorful.Color{}, false)
			line.WriteRune(rune(0x2800 + pattern))
		}
		ansi.reset(&line)
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

func strokeHalf(p ring.Paint) float32 {
	return math32.Max(p.StrokeWidth/2, 0.5)
}

func distance(c ring.Point, x, y float32) float32 {
	return math32.Hypot(x-c.X, y-c.Y)
}

func arcPoint(c ring.Point, r, angle float32) ring.Point {
	rad := angle * math32.Pi / 180
	return ring.Point{X: c.X + r*math32.Cos(rad), Y: c.Y + r*math32.Sin(rad)}
}

// inSweep reports whether (x, y) lies within sweep degrees clockwise of
// start, seen from c.
func inSweep(c ring.Point, x, y, start, sweep float32) bool {
	if sweep >= ring.FullAngle {
		return true
	}
	a := math32.Atan2(y-c.Y, x-c.X) * 180 / math32.Pi
	rel := math32.Mod(a-start, ring.FullAngle)
	if rel < 0 {
		rel += ring.FullAngle
	}
	return rel <= sweep
}
