package icon

import (
	"image"
	"image/color"
)

// Size is the width and height of the icon in pixels.
const Size = 1024

const (
	backgroundRadius = 180

	// The gradient band covers the top third of the canvas.
	gradientRows     = Size / 3
	gradientMaxAlpha = 40
)

// Page geometry. Everything on the document glyph derives from these.
const (
	pageLeft   = 200
	pageTop    = 120
	pageRight  = 760
	pageBottom = 860
	foldSize   = 100
)

const (
	lineTop    = 300
	linePitch  = 50
	lineHeight = 18
	lineInset  = 50
	lineRadius = 9
)

// Fraction of the usable page width taken by each simulated text line.
var lineWidths = [...]float64{0.85, 0.70, 0.90, 0.60, 0.80, 0.75, 0.55, 0.65}

const (
	badgeX      = pageLeft - 20
	badgeY      = pageTop + 30
	badgeWidth  = 160
	badgeHeight = 65
	badgeRadius = 14

	BadgeText     = "PDF"
	BadgeFontSize = 40
)

const (
	arrowCX = 680
	arrowCY = 750
	bookX   = 750
	bookY   = 700
)

var (
	backgroundColor = color.NRGBA{30, 64, 175, 255}  // blue-700
	pageColor       = color.NRGBA{255, 255, 255, 240}
	foldColor       = color.NRGBA{200, 210, 230, 200}
	foldEdgeColor   = color.NRGBA{150, 170, 200, 180}
	lineColor       = color.NRGBA{180, 190, 210, 200}
	badgeColor      = color.NRGBA{220, 38, 38, 255}
	badgeTextColor  = color.NRGBA{255, 255, 255, 255}
	arrowColor      = color.NRGBA{34, 197, 94, 255}  // green-500
	bookColor       = color.NRGBA{251, 191, 36, 255} // amber-400
	bookPageColor   = color.NRGBA{255, 255, 255, 200}
)

// GradientAlpha is the white overlay alpha for a row of the gradient band.
// It falls linearly from gradientMaxAlpha at row 0 and is zero outside the
// band.
func GradientAlpha(row int) uint8 {
	if row < 0 || row >= gradientRows {
		return 0
	}
	return uint8(gradientMaxAlpha * (gradientRows - row) / gradientRows)
}

func pagePolygon() []image.Point {
	return []image.Point{
		{pageLeft, pageTop},
		{pageRight - foldSize, pageTop},
		{pageRight, pageTop + foldSize},
		{pageRight, pageBottom},
		{pageLeft, pageBottom},
	}
}

// foldPolygon is also the path of the fold edge stroke.
func foldPolygon() []image.Point {
	return []image.Point{
		{pageRight - foldSize, pageTop},
		{pageRight - foldSize, pageTop + foldSize},
		{pageRight, pageTop + foldSize},
	}
}

// TextLineRects returns the simulated paragraph, top line first.
func TextLineRects() []image.Rectangle {
	usable := float64(pageRight - pageLeft - 2*lineInset)
	rects := make([]image.Rectangle, len(lineWidths))
	for i, frac := range lineWidths {
		x := pageLeft + lineInset
		y := lineTop + i*linePitch
		rects[i] = image.Rect(x, y, x+int(usable*frac), y+lineHeight)
	}
	return rects
}

func BadgeRect() image.Rectangle {
	return image.Rect(badgeX, badgeY, badgeX+badgeWidth, badgeY+badgeHeight)
}

func arrowShaft() image.Rectangle {
	return image.Rect(arrowCX-80, arrowCY-15, arrowCX+30, arrowCY+15)
}

func arrowHead() []image.Point {
	return []image.Point{
		{arrowCX + 25, arrowCY - 40},
		{arrowCX + 80, arrowCY},
		{arrowCX + 25, arrowCY + 40},
	}
}

// ArrowBounds covers both the shaft and the head.
func ArrowBounds() image.Rectangle {
	return arrowShaft().Union(polygonBounds(arrowHead()))
}

func bookSpine() image.Rectangle {
	return image.Rect(bookX, bookY, bookX+70, bookY+95)
}

func bookPages() image.Rectangle {
	return image.Rect(bookX+8, bookY+5, bookX+65, bookY+90)
}

func bookSpineLine() []image.Point {
	return []image.Point{{bookX + 20, bookY + 10}, {bookX + 20, bookY + 85}}
}

func BookBounds() image.Rectangle {
	return bookSpine().Union(bookPages()).Union(polygonBounds(bookSpineLine()))
}

func polygonBounds(pts []image.Point) image.Rectangle {
	var r image.Rectangle
	for i, p := range pts {
		pr := image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
		if i == 0 {
			r = pr
			continue
		}
		r = r.Union(pr)
	}
	return r
}
