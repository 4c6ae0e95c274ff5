package render

import "github.com/gdamore/tcell/v2"

// Pixel-to-cell downscale factors. With CellPx=32 and PadPx=16 every
// wall line lands on an exact terminal cell: one maze cell occupies
// 4 columns by 2 rows.
const (
	pxPerCol = 8
	pxPerRow = 16
)

// Canvas renders pixel-space draw calls onto a tcell screen by mapping
// pixel coordinates to character cells and painting cell backgrounds.
type Canvas struct {
	screen tcell.Screen
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

func style(c RGB) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// span maps a pixel interval [start, start+length) onto whole cells,
// shrink-to-fit so fills never bleed across wall lines. Intervals
// narrower than one cell collapse to the cell under their midpoint.
func span(start, length, per int) (lo, hi int) {
	lo = (start + per - 1) / per
	hi = (start + length) / per
	if hi <= lo {
		lo = (start + length/2) / per
		hi = lo + 1
	}
	return lo, hi
}

// line maps a pixel coordinate of an axis-aligned line to its cell,
// rounding to the nearest cell boundary.
func line(px, per int) int {
	return (px + per/2) / per
}

func (c *Canvas) Clear(col RGB) {
	c.screen.Fill(' ', style(col))
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col RGB) {
	st := style(col)
	if y0 == y1 {
		row := line(y0, pxPerRow)
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := line(x0, pxPerCol); x <= line(x1, pxPerCol); x++ {
			c.screen.SetContent(x, row, ' ', nil, st)
		}
		return
	}
	if x0 == x1 {
		colm := line(x0, pxPerCol)
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := line(y0, pxPerRow); y <= line(y1, pxPerRow); y++ {
			c.screen.SetContent(colm, y, ' ', nil, st)
		}
	}
	// Diagonal lines are not part of the surface contract
}

func (c *Canvas) FillRect(x, y, w, h int, col RGB) {
	st := style(col)
	c0, c1 := span(x, w, pxPerCol)
	r0, r1 := span(y, h, pxPerRow)
	for row := r0; row < r1; row++ {
		for cx := c0; cx < c1; cx++ {
			c.screen.SetContent(cx, row, ' ', nil, st)
		}
	}
}

func (c *Canvas) SetTitle(title string) {
	c.screen.SetTitle(title)
}

func (c *Canvas) Present() {
	c.screen.Show()
}
