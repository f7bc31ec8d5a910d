package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/garapon/choreo"
	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/screen"
)

// Screen text
const (
	TitleText     = "G A R A P O N"
	MainHint      = "Click the drum or press Enter to draw"
	SpinHint      = "Drag clockwise around the drum for one full turn"
	SuspenseText  = "Which prize will it be..."
	ResultHeading = "Congratulations!"
	ResultHint    = "Press r to play again"
	ConfirmText   = "Draw once?"
	ConfirmHint   = "[y] draw   [n] cancel"
	CancelText    = "Maybe next time."
	CancelHint    = "[Enter] back"
)

// Ball animations span the gap until the next stage applies
const (
	ballEmergingLen = constants.BallArrivedDelay
	ballRollLen     = constants.SuspenseDelay
)

// arrowGlyphs maps 45 degree sectors, starting at 0 (right) and turning clockwise
var arrowGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// GaraponRenderer draws the view onto a tcell screen
type GaraponRenderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewGaraponRenderer creates a renderer for screen
func NewGaraponRenderer(s tcell.Screen) *GaraponRenderer {
	return &GaraponRenderer{
		screen: s,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// RenderFrame draws the entire frame
func (r *GaraponRenderer) RenderFrame(v *View) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	w, h := r.screen.Size()
	l := NewLayout(w, h)

	switch v.Screen {
	case screen.Main:
		r.drawMain(l, v)
	case screen.Spin:
		r.drawSpin(l, v)
	case screen.Ball:
		r.drawBall(l, v)
	case screen.Result:
		r.drawResult(l, v)
	}

	switch v.Overlay {
	case screen.Confirm:
		r.drawDialog(l, ConfirmText, ConfirmHint)
	case screen.Cancel:
		r.drawDialog(l, CancelText, CancelHint)
	}

	r.drawStatusBar(l, v)
	r.screen.Show()
}

func (r *GaraponRenderer) drawMain(l Layout, v *View) {
	r.textCenter(l, 1, TitleText, r.base.Foreground(RgbTitle).Bold(true))
	rim := RgbDrumRim
	if v.Hover && v.Overlay == screen.None {
		rim = RgbRimHover
	}
	r.drawDrum(l, 0, 0, rim)
	r.textCenter(l, l.Height-3, MainHint, r.base.Foreground(RgbDimText))
}

func (r *GaraponRenderer) drawSpin(l Layout, v *View) {
	r.drawRing(l, v.Progress)
	rim := RgbDrumRim
	if v.Dragging {
		rim = RgbRimGrabbed
	}
	r.drawDrum(l, v.DrumRotation(), v.HandleRotation(), rim)
	r.drawArrow(l, v)

	pct := fmt.Sprintf("%3.0f%%", v.Progress*100)
	r.textCenter(l, l.CY, pct, r.base.Foreground(RgbDrumHub).Bold(true))
	r.textCenter(l, l.Height-3, SpinHint, r.base.Foreground(RgbDimText))
}

func (r *GaraponRenderer) drawBall(l Layout, v *View) {
	r.drawDrum(l, constants.TargetRotation, constants.TargetRotation*constants.HandleRotationRatio, RgbDrumRim)

	// Small ball drops from the drum outlet
	if elapsed, ok := v.StageElapsed(choreo.StageBallEmerging); ok && !v.StageActive(choreo.StageBallArrived) {
		t := clamp01(float64(elapsed) / float64(ballEmergingLen))
		x, y := l.Polar(90, float64(l.DrumRX)/2)
		drop := int(t * float64(l.Height-2-y))
		r.set(x, y+drop, '●', r.base.Foreground(RgbBallSmall))
	}

	// Large ball rolls in from the right edge to below the drum
	if elapsed, ok := v.StageElapsed(choreo.StageBallArrived); ok {
		t := clamp01(float64(elapsed) / float64(ballRollLen))
		eased := 1 - (1-t)*(1-t)
		startX := float64(l.Width - 4)
		endX := float64(l.CX - 1)
		x := int(startX + (endX-startX)*eased)
		y := min(l.CY+l.DrumRX/2+2, l.Height-4)
		style := r.base.Foreground(RgbBallLarge).Bold(true)
		r.text(x, y, "(@)", style)
	}

	if v.StageActive(choreo.StageSuspense) {
		r.textCenter(l, 1, SuspenseText, r.base.Foreground(RgbSuspense).Bold(true))
	}
}

func (r *GaraponRenderer) drawResult(l Layout, v *View) {
	label := "A mystery prize"
	if v.Prize != nil {
		label = v.Prize.Label()
	}

	width := max(runewidth.StringWidth(label), runewidth.StringWidth(ResultHeading)) + 6
	height := 7
	x0 := (l.Width - width) / 2
	y0 := max((l.Height-1-height)/2, 0)

	r.box(x0, y0, width, height, r.base.Foreground(RgbCardBorder))
	r.textCenter(l, y0+2, ResultHeading, r.base.Foreground(RgbTitle).Bold(true))
	r.textCenter(l, y0+4, label, r.base.Foreground(RgbText).Bold(true))
	r.textCenter(l, l.Height-3, ResultHint, r.base.Foreground(RgbDimText))
}

// drawDrum draws the rim ellipse in rimColor, spokes rotated by rotation and the crank handle
func (r *GaraponRenderer) drawDrum(l Layout, rotation, handle float64, rimColor tcell.Color) {
	rx := float64(l.DrumRX)
	rim := r.base.Foreground(rimColor)
	for deg := 0.0; deg < 360; deg += 3 {
		x, y := l.Polar(deg, rx)
		r.set(x, y, '█', rim)
	}

	spoke := r.base.Foreground(RgbDrumSpoke)
	for i := 0; i < constants.DrumSpokes; i++ {
		deg := rotation + float64(i)*360/constants.DrumSpokes
		for d := 1.0; d < rx-1; d++ {
			x, y := l.Polar(deg, d)
			r.set(x, y, '·', spoke)
		}
	}
	r.set(l.CX, l.CY, '◉', r.base.Foreground(RgbDrumHub))

	// Crank axle on the right of the rim, handle knob orbiting it
	ax, ay := l.Polar(0, rx+2)
	r.set(ax, ay, '+', r.base.Foreground(RgbHandle))
	rad := handle * math.Pi / 180
	hx := ax + int(math.Round(2*math.Cos(rad)))
	hy := ay + int(math.Round(math.Sin(rad)))
	r.set(hx, hy, 'o', r.base.Foreground(RgbHandle).Bold(true))
}

// drawRing lights ring segments clockwise from the top up to progress
func (r *GaraponRenderer) drawRing(l Layout, progress float64) {
	rx := float64(l.RingRX)
	lit := int(math.Floor(progress * constants.RingSegments))
	for i := 0; i < constants.RingSegments; i++ {
		frac := float64(i) / constants.RingSegments
		x, y := l.Polar(-90+frac*360, rx)
		if i < lit {
			r.set(x, y, '█', r.base.Foreground(RingColor(frac)))
		} else {
			r.set(x, y, '░', r.base.Foreground(RgbRingEmpty))
		}
	}
}

// drawArrow places the pointer arrow on the ring at the current bearing
func (r *GaraponRenderer) drawArrow(l Layout, v *View) {
	x, y := l.Polar(v.Angle, float64(l.RingRX+1))
	r.set(x, y, ArrowGlyph(v.ArrowRotation()), r.base.Foreground(RgbArrow).Bold(true))
}

func (r *GaraponRenderer) drawDialog(l Layout, text, hint string) {
	width := max(runewidth.StringWidth(text), runewidth.StringWidth(hint)) + 6
	height := 5
	x0 := (l.Width - width) / 2
	y0 := max((l.Height-1-height)/2, 0)

	bg := r.base.Background(RgbOverlayBg)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.set(x, y, ' ', bg)
		}
	}
	r.box(x0, y0, width, height, bg.Foreground(RgbCardBorder))
	r.textCenter(l, y0+1, text, bg.Foreground(RgbText).Bold(true))
	r.textCenter(l, y0+3, hint, bg.Foreground(RgbDimText))
}

func (r *GaraponRenderer) drawStatusBar(l Layout, v *View) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	y := l.Height - 1
	for x := 0; x < l.Width; x++ {
		r.set(x, y, ' ', style)
	}
	screenName := v.Screen.String()
	if v.Dragging {
		screenName += " (grabbing)"
	}
	status := fmt.Sprintf(" %s | turn %3.0f° | q quit  r reset ", screenName, v.DrumRotation())
	r.text(0, y, status, style)
}

// box draws a single-line border
func (r *GaraponRenderer) box(x0, y0, w, h int, style tcell.Style) {
	for x := x0 + 1; x < x0+w-1; x++ {
		r.set(x, y0, '─', style)
		r.set(x, y0+h-1, '─', style)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		r.set(x0, y, '│', style)
		r.set(x0+w-1, y, '│', style)
	}
	r.set(x0, y0, '┌', style)
	r.set(x0+w-1, y0, '┐', style)
	r.set(x0, y0+h-1, '└', style)
	r.set(x0+w-1, y0+h-1, '┘', style)
}

func (r *GaraponRenderer) textCenter(l Layout, y int, s string, style tcell.Style) {
	r.text((l.Width-runewidth.StringWidth(s))/2, y, s, style)
}

func (r *GaraponRenderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.set(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
}

// set writes one cell, clipped to the screen
func (r *GaraponRenderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// ArrowGlyph picks the arrow closest to direction deg (0 = right, 90 = down)
func ArrowGlyph(deg float64) rune {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	sector := int(math.Round(d/45)) % 8
	return arrowGlyphs[sector]
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
