package icon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is an RGBA surface with anti-aliased path filling and stroking.
// Every draw blends over what is already there.
type Canvas struct {
	img     *image.RGBA
	clip    *image.Alpha
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewCanvas returns a fully transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Canvas{
		img:     img,
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// FillRect blends col into r. When a clip is set, coverage is scaled by it.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	src := image.NewUniform(col)
	if c.clip == nil {
		draw.Draw(c.img, r, src, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(c.img, r, src, image.Point{}, c.clip, r.Min, draw.Over)
}

// ClipRoundedRect restricts later FillRect calls to the rounded rectangle r.
func (c *Canvas) ClipRoundedRect(r image.Rectangle, radius float64) {
	b := c.Bounds()
	mask := image.NewAlpha(b)
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), mask, b)
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	addRoundedRect(filler, r, radius)
	filler.SetColor(color.Opaque)
	filler.Draw()
	c.clip = mask
}

func (c *Canvas) ResetClip() {
	c.clip = nil
}

// FillRoundedRect fills r with its corners replaced by quarter circles of
// the given radius.
func (c *Canvas) FillRoundedRect(r image.Rectangle, radius float64, col color.Color) {
	addRoundedRect(c.filler, r, radius)
	c.fill(col)
}

func (c *Canvas) FillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	addPath(c.filler, pts, true)
	c.fill(col)
}

// StrokePolyline draws an open path through pts with butt caps and miter
// joins.
func (c *Canvas) StrokePolyline(pts []image.Point, width float64, col color.Color) {
	if len(pts) < 2 {
		return
	}
	c.stroker.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Miter)
	addPath(c.stroker, pts, false)
	c.stroker.SetColor(col)
	c.stroker.Draw()
	c.stroker.Clear()
}

// DrawText draws s with its dot (baseline origin) at dot.
func (c *Canvas) DrawText(dot image.Point, s string, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
}

// MeasureText returns the ink bounds of s relative to the dot, in whole
// pixels.
func MeasureText(face font.Face, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// CenterText returns the dot at which s renders with its ink centered in box.
func CenterText(face font.Face, s string, box image.Rectangle) image.Point {
	ink := MeasureText(face, s)
	return image.Point{
		X: box.Min.X + (box.Dx()-ink.Dx())/2 - ink.Min.X,
		Y: box.Min.Y + (box.Dy()-ink.Dy())/2 - ink.Min.Y,
	}
}

func (c *Canvas) fill(col color.Color) {
	c.filler.SetColor(col)
	c.filler.Draw()
	c.filler.Clear()
}

func addRoundedRect(p rasterx.Adder, r image.Rectangle, radius float64) {
	rasterx.AddRoundRect(
		float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y),
		radius, radius, 0, rasterx.RoundGap, p)
}

func addPath(p rasterx.Adder, pts []image.Point, closed bool) {
	p.Start(toFixed(pts[0]))
	for _, pt := range pts[1:] {
		p.Line(toFixed(pt))
	}
	p.Stop(closed)
}

func toFixed(pt image.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(pt.X), float64(pt.Y))
}
