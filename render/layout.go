package render

import (
	"math"

	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/gesture"
)

// Layout is the spin screen geometry for one terminal size
type Layout struct {
	Width, Height int
	CX, CY        int // drum center cell
	DrumRX        int // drum horizontal radius, cells
	RingRX        int // progress ring horizontal radius, cells
}

// NewLayout fits the drum and ring into w x h, leaving the bottom row for the status bar
func NewLayout(w, h int) Layout {
	usable := h - 1
	l := Layout{
		Width:  w,
		Height: h,
		CX:     w / 2,
		CY:     usable / 2,
	}

	// Ring must fit both horizontally and vertically (vertical radius is RX / CellAspect)
	maxRX := min(w/2-constants.TouchAreaPadding-1, int(float64(usable/2-1)*constants.CellAspect))
	l.RingRX = max(min(constants.RingRadiusX, maxRX), 4)
	l.DrumRX = max(l.RingRX*constants.DrumRadiusX/constants.RingRadiusX, 3)
	return l
}

// CellToPoint converts a cell to aspect-corrected point space, using the cell center
func CellToPoint(x, y int) gesture.Point {
	return gesture.Point{
		X: float64(x) + 0.5,
		Y: (float64(y) + 0.5) * constants.CellAspect,
	}
}

// Polar returns the cell at bearing deg and horizontal radius rx around the drum center
func (l Layout) Polar(deg float64, rx float64) (int, int) {
	rad := deg * math.Pi / 180
	x := float64(l.CX) + rx*math.Cos(rad)
	y := float64(l.CY) + rx*math.Sin(rad)/constants.CellAspect
	return int(math.Round(x)), int(math.Round(y))
}

// TouchBounds is the interactive region in point space: the ring plus padding
func (l Layout) TouchBounds() gesture.Rect {
	c := CellToPoint(l.CX, l.CY)
	r := float64(l.RingRX + constants.TouchAreaPadding)
	return gesture.Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

// Contains reports whether cell (x, y) lies within the circular touch area
func (l Layout) Contains(x, y int) bool {
	b := l.TouchBounds()
	c := b.Center()
	p := CellToPoint(x, y)
	return math.Hypot(p.X-c.X, p.Y-c.Y) <= b.W/2
}

// TouchArea implements gesture.Region against the live terminal size
type TouchArea struct {
	size func() (int, int)
}

// NewTouchArea creates a region that re-reads the terminal size on each query
func NewTouchArea(size func() (int, int)) *TouchArea {
	return &TouchArea{size: size}
}

// Layout returns the current geometry
func (t *TouchArea) Layout() Layout {
	return NewLayout(t.size())
}

// Bounds implements gesture.Region
func (t *TouchArea) Bounds() gesture.Rect {
	return t.Layout().TouchBounds()
}

// Contains reports whether a cell is inside the current touch area
func (t *TouchArea) Contains(x, y int) bool {
	return t.Layout().Contains(x, y)
}
