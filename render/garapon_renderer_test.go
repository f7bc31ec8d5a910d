package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/garapon/choreo"
	"github.com/lixenwraith/garapon/prize"
	"github.com/lixenwraith/garapon/screen"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		out = append(out, runeAt(s, x, y))
	}
	return string(out)
}

func TestRenderMainScreen(t *testing.T) {
	s := newSimScreen(t)
	v, _ := newTestView()

	NewGaraponRenderer(s).RenderFrame(v)

	if got := runeAt(s, (80-len(TitleText))/2, 1); got != 'G' {
		t.Errorf("Expected title at row 1, got %q", got)
	}
	if got := runeAt(s, 1, 23); got != 'm' {
		t.Errorf("Expected status bar naming main screen, got row %q", rowText(s, 23))
	}
}

func TestRenderConfirmOverlay(t *testing.T) {
	s := newSimScreen(t)
	v, _ := newTestView()
	v.SetScreens(screen.Main, screen.Confirm)

	NewGaraponRenderer(s).RenderFrame(v)

	// Dialog is 5 rows centered in the 23 usable rows, text on its second row
	if got := runeAt(s, (80-len(ConfirmText))/2, 10); got != 'D' {
		t.Errorf("Expected confirm text, got row %q", rowText(s, 10))
	}
}

func TestRenderSpinRing(t *testing.T) {
	s := newSimScreen(t)
	v, _ := newTestView()
	v.SetScreens(screen.Spin, screen.None)
	r := NewGaraponRenderer(s)
	l := NewLayout(80, 24)
	topX, topY := l.Polar(-90, float64(l.RingRX))

	r.RenderFrame(v)
	if got := runeAt(s, topX, topY); got != '░' {
		t.Errorf("Expected unlit ring at top with no progress, got %q", got)
	}

	v.OnRotate(0, 1)
	r.RenderFrame(v)
	if got := runeAt(s, topX, topY); got != '█' {
		t.Errorf("Expected lit ring at top with full progress, got %q", got)
	}

	// Arrow sits just outside the ring at the pointer bearing
	ax, ay := l.Polar(0, float64(l.RingRX+1))
	if got := runeAt(s, ax, ay); got != '↓' {
		t.Errorf("Expected clockwise tangent arrow at bearing 0, got %q", got)
	}
}

func TestRenderBallRollsIn(t *testing.T) {
	s := newSimScreen(t)
	v, clock := newTestView()
	v.SetScreens(screen.Ball, screen.None)
	r := NewGaraponRenderer(s)
	l := NewLayout(80, 24)
	y := min(l.CY+l.DrumRX/2+2, l.Height-4)

	v.ApplyStage(choreo.StageBallArrived)
	r.RenderFrame(v)
	if got := runeAt(s, l.Width-4, y); got != '(' {
		t.Errorf("Expected ball at right edge on arrival, got row %q", rowText(s, y))
	}

	clock.Advance(3 * time.Second)
	r.RenderFrame(v)
	if got := runeAt(s, l.CX-1, y); got != '(' {
		t.Errorf("Expected ball under the drum after rolling, got row %q", rowText(s, y))
	}

	v.ApplyStage(choreo.StageSuspense)
	r.RenderFrame(v)
	if got := runeAt(s, (80-len(SuspenseText))/2, 1); got != 'W' {
		t.Errorf("Expected suspense text, got row %q", rowText(s, 1))
	}
}

func TestRenderResultCard(t *testing.T) {
	s := newSimScreen(t)
	v, _ := newTestView()
	p := prize.DefaultPrizes()[0]
	v.Prize = &p
	v.SetScreens(screen.Result, screen.None)

	NewGaraponRenderer(s).RenderFrame(v)

	label := p.Label()
	if got := runeAt(s, (80-len(label))/2, 12); got != '1' {
		t.Errorf("Expected prize label on card, got row %q", rowText(s, 12))
	}
}

func TestRenderClipsTinyTerminal(t *testing.T) {
	s := newSimScreen(t)
	s.SetSize(8, 3)
	v, _ := newTestView()
	v.SetScreens(screen.Spin, screen.Confirm)
	v.OnRotate(45, 0.5)

	// Must not panic on out-of-range cells
	NewGaraponRenderer(s).RenderFrame(v)
}

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		deg  float64
		want rune
	}{
		{0, '→'},
		{90, '↓'},
		{180, '←'},
		{270, '↑'},
		{-90, '↑'},
		{44, '↘'},
		{359, '→'},
		{720, '→'},
	}
	for _, tt := range tests {
		if got := ArrowGlyph(tt.deg); got != tt.want {
			t.Errorf("ArrowGlyph(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func fgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return fg
}

// TestRenderHoverHighlightsRim verifies the idle drum lights up under the pointer
func TestRenderHoverHighlightsRim(t *testing.T) {
	s := newSimScreen(t)
	v, _ := newTestView()
	r := NewGaraponRenderer(s)
	l := NewLayout(80, 24)
	x, y := l.Polar(-90, float64(l.DrumRX))

	r.RenderFrame(v)
	if got := fgAt(s, x, y); got != RgbDrumRim {
		t.Errorf("Expected plain rim without hover, got %v", got)
	}

	v.Hover = true
	r.RenderFrame(v)
	if got := fgAt(s, x, y); got != RgbRimHover {
		t.Errorf("Expected hover rim, got %v", got)
	}

	// Dialog on top suppresses the highlight
	v.Overlay = screen.Confirm
	r.RenderFrame(v)
	if got := fgAt(s, x, y); got == RgbRimHover {
		t.Error("Expected no hover rim under a dialog")
	}
}

// TestRenderDraggingGrabsDrum verifies the grabbed state is visible while spinning
func TestRenderDraggingGrabsDrum(t *testing.T) {
	s := newSimScreen(t)
	v, _ := newTestView()
	v.SetScreens(screen.Spin, screen.None)
	r := NewGaraponRenderer(s)
	l := NewLayout(80, 24)
	x, y := l.Polar(-90, float64(l.DrumRX))

	r.RenderFrame(v)
	if got := fgAt(s, x, y); got != RgbDrumRim {
		t.Errorf("Expected plain rim before grabbing, got %v", got)
	}
	if strings.Contains(rowText(s, 23), "grabbing") {
		t.Error("Expected no grab marker in status bar before dragging")
	}

	v.Dragging = true
	r.RenderFrame(v)
	if got := fgAt(s, x, y); got != RgbRimGrabbed {
		t.Errorf("Expected grabbed rim while dragging, got %v", got)
	}
	if !strings.Contains(rowText(s, 23), "spin (grabbing)") {
		t.Errorf("Expected grab marker in status bar, got %q", rowText(s, 23))
	}
}
