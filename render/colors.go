package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 230) // Body text
	RgbDimText    = tcell.NewRGBColor(120, 120, 140) // Hints
	RgbTitle      = tcell.NewRGBColor(255, 215, 0)   // Gold title

	RgbDrumRim    = tcell.NewRGBColor(200, 60, 60)   // Lacquered red rim
	RgbRimHover   = tcell.NewRGBColor(255, 110, 90)  // Rim under the pointer
	RgbRimGrabbed = tcell.NewRGBColor(255, 170, 60)  // Rim while dragging
	RgbDrumSpoke  = tcell.NewRGBColor(255, 200, 120) // Wooden spokes
	RgbDrumHub    = tcell.NewRGBColor(255, 215, 0)   // Brass hub
	RgbHandle     = tcell.NewRGBColor(180, 180, 190) // Steel crank handle
	RgbRingEmpty  = tcell.NewRGBColor(60, 60, 80)    // Unfilled progress ring
	RgbArrow      = tcell.NewRGBColor(255, 255, 255) // Pointer arrow
	RgbBallSmall  = tcell.NewRGBColor(255, 120, 120) // Ball leaving the drum
	RgbBallLarge  = tcell.NewRGBColor(255, 80, 80)   // Ball rolling in
	RgbSuspense   = tcell.NewRGBColor(255, 235, 160) // "Which prize" text
	RgbCardBorder = tcell.NewRGBColor(255, 215, 0)   // Result card
	RgbOverlayBg  = tcell.NewRGBColor(40, 40, 60)    // Dialog background

	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)

var (
	ringStart = mustHex("#ffd700")
	ringEnd   = mustHex("#ff4500")
)

// mustHex parses a palette literal; only called with constants
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RingColor returns the progress ring gradient color at t in [0, 1]
func RingColor(t float64) tcell.Color {
	c := ringStart
	switch {
	case t >= 1:
		c = ringEnd
	case t > 0:
		c = ringStart.BlendHcl(ringEnd, t).Clamped()
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
