package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Render paints the icon onto a fresh Size×Size canvas. face is used for
// the badge text.
func Render(face font.Face) *image.RGBA {
	c := NewCanvas(Size, Size)

	drawBackground(c)
	drawDocument(c)
	drawTextLines(c)
	drawBadge(c, face)
	drawArrow(c)
	drawBook(c)

	return c.Image()
}

func drawBackground(c *Canvas) {
	bg := image.Rect(0, 0, Size, Size)
	c.FillRoundedRect(bg, backgroundRadius, backgroundColor)

	// Lighter at the top. Strips only land on the background shape.
	c.ClipRoundedRect(bg, backgroundRadius)
	for row := 0; row < gradientRows; row++ {
		a := GradientAlpha(row)
		if a == 0 {
			continue
		}
		c.FillRect(image.Rect(0, row, Size, row+1), color.NRGBA{255, 255, 255, a})
	}
	c.ResetClip()
}

func drawDocument(c *Canvas) {
	c.FillPolygon(pagePolygon(), pageColor)
	c.FillPolygon(foldPolygon(), foldColor)
	c.StrokePolyline(foldPolygon(), 3, foldEdgeColor)
}

func drawTextLines(c *Canvas) {
	for _, r := range TextLineRects() {
		c.FillRoundedRect(r, lineRadius, lineColor)
	}
}

func drawBadge(c *Canvas, face font.Face) {
	box := BadgeRect()
	c.FillRoundedRect(box, badgeRadius, badgeColor)
	c.DrawText(CenterText(face, BadgeText, box), BadgeText, face, badgeTextColor)
}

func drawArrow(c *Canvas) {
	c.FillRoundedRect(arrowShaft(), 8, arrowColor)
	c.FillPolygon(arrowHead(), arrowColor)
}

func drawBook(c *Canvas) {
	c.FillRoundedRect(bookSpine(), 8, bookColor)
	c.FillRoundedRect(bookPages(), 5, bookPageColor)
	c.StrokePolyline(bookSpineLine(), 4, bookColor)
}
