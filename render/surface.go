package render

// RGB is an opaque sRGB color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Frame palette
var (
	ColorBackground = RGB{15, 15, 18}
	ColorWall       = RGB{230, 230, 230}
	ColorGoal       = RGB{40, 160, 70}
	ColorPlayer     = RGB{220, 60, 70}
	ColorPath       = RGB{200, 170, 60}
)

// Surface is the drawing backend contract. Coordinates are pixel units;
// the backend decides how pixels map onto its display. Lines emitted by
// the frame adapter are always axis-aligned.
type Surface interface {
	Clear(c RGB)
	DrawLine(x0, y0, x1, y1 int, c RGB)
	FillRect(x, y, w, h int, c RGB)
	SetTitle(title string)
	Present()
}
