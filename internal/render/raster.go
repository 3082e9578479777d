package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/olivier-w/ringbar/internal/ring"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// arcStep is the polygon resolution for curves, in degrees.
const arcStep = 2

// Raster draws onto an RGBA image with anti-aliased vector paths. The erase
// blend removes destination alpha in proportion to coverage.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

// NewRaster creates a transparent w x h image.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		face: basicfont.Face7x13,
	}
}

// Image returns the drawn image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Width() float32  { return float32(r.img.Bounds().Dx()) }
func (r *Raster) Height() float32 { return float32(r.img.Bounds().Dy()) }

func (r *Raster) Layered() bool    { return true }
func (r *Raster) Density() float32 { return 1 }

// FontMetrics reports the fixed face; TextSize and Bold are not honored.
func (r *Raster) FontMetrics(ring.Paint) ring.FontMetrics {
	m := r.face.Metrics()
	return ring.FontMetrics{
		Ascent:  -fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
}

func (r *Raster) StrokeCircle(center ring.Point, radius float32, p ring.Paint) {
	half := p.StrokeWidth / 2
	z := r.rasterizer()
	// opposite windings leave the inner disc empty
	polyArc(z, center, radius+half, 0, ring.FullAngle, true)
	polyArc(z, center, max(radius-half, 0), ring.FullAngle, -ring.FullAngle, false)
	z.ClosePath()
	r.paint(z, p)
}

func (r *Raster) StrokeArc(bounds ring.Rect, start, sweep float32, p ring.Paint) {
	if sweep <= 0 {
		return
	}
	sweep = min(sweep, ring.FullAngle)
	center := ring.Point{X: (bounds.Left + bounds.Right) / 2, Y: (bounds.Top + bounds.Bottom) / 2}
	radius := (bounds.Right - bounds.Left) / 2
	half := p.StrokeWidth / 2

	z := r.rasterizer()
	polyArc(z, center, radius+half, start, sweep, true)
	polyArc(z, center, max(radius-half, 0), start+sweep, -sweep, false)
	z.ClosePath()
	r.paint(z, p)

	if p.Cap == ring.CapRound && sweep < ring.FullAngle {
		capPaint := p
		capPaint.Style = ring.Fill
		r.FillCircle(arcPoint(center, radius, start), half, capPaint)
		r.FillCircle(arcPoint(center, radius, start+sweep), half, capPaint)
	}
}

func (r *Raster) FillCircle(center ring.Point, radius float32, p ring.Paint) {
	if radius <= 0 {
		return
	}
	z := r.rasterizer()
	polyArc(z, center, radius, 0, ring.FullAngle, true)
	z.ClosePath()
	r.paint(z, p)
}

// DrawText draws text centered on at.X with its baseline on at.Y.
func (r *Raster) DrawText(text string, at ring.Point, p ring.Paint) {
	width := font.MeasureString(r.face, text)
	dot := fixed.Point26_6{
		X: floatToFixed(at.X) - width/2,
		Y: floatToFixed(at.Y),
	}
	erase := p.Blend == ring.BlendErase
	src := image.NewUniform(p.Color)

	prev := rune(-1)
	for _, c := range text {
		if prev >= 0 {
			dot.X += r.face.Kern(prev, c)
		}
		dr, mask, maskp, advance, ok := r.face.Glyph(dot, c)
		if ok {
			if erase {
				r.erase(dr, mask, maskp)
			} else {
				draw.DrawMask(r.img, dr, src, image.Point{}, mask, maskp, draw.Over)
			}
		}
		dot.X += advance
		prev = c
	}
}

// WritePNG encodes the image.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (r *Raster) paint(z *vector.Rasterizer, p ring.Paint) {
	b := r.img.Bounds()
	if p.Blend == ring.BlendErase {
		mask := image.NewAlpha(b)
		z.Draw(mask, b, image.Opaque, image.Point{})
		r.erase(b, mask, b.Min)
		return
	}
	z.DrawOp = draw.Over
	z.Draw(r.img, b, image.NewUniform(p.Color), image.Point{})
}

// erase scales every pixel in dr by one minus the mask coverage, leaving
// uncovered pixels untouched. mp is the mask point aligned with dr.Min.
func (r *Raster) erase(dr image.Rectangle, mask image.Image, mp image.Point) {
	offset := mp.Sub(dr.Min)
	dr = dr.Intersect(r.img.Bounds())
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, cover := mask.At(x+offset.X, y+offset.Y).RGBA()
			if cover == 0 {
				continue
			}
			keep := 0xffff - cover
			i := r.img.PixOffset(x, y)
			px := r.img.Pix[i : i+4 : i+4]
			for k := range px {
				px[k] = uint8(uint32(px[k]) * keep / 0xffff)
			}
		}
	}
}

// polyArc appends points of a circular arc to z. With move it starts a new
// subpath, otherwise it continues the current one.
func polyArc(z *vector.Rasterizer, c ring.Point, radius, start, sweep float32, move bool) {
	steps := max(int(math32.Ceil(math32.Abs(sweep)/arcStep)), 1)
	for i := 0; i <= steps; i++ {
		pt := arcPoint(c, radius, start+sweep*float32(i)/float32(steps))
		if i == 0 && move {
			z.MoveTo(pt.X, pt.Y)
			continue
		}
		z.LineTo(pt.X, pt.Y)
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}
