package render

import (
	"testing"
	"time"

	"github.com/lixenwraith/garapon/choreo"
	"github.com/lixenwraith/garapon/engine"
	"github.com/lixenwraith/garapon/prize"
	"github.com/lixenwraith/garapon/screen"
)

func newTestView() (*View, *engine.ManualClock) {
	clock := engine.NewManualClock(time.Unix(1000, 0))
	return NewView(clock), clock
}

func TestViewRotationMapping(t *testing.T) {
	v, _ := newTestView()

	v.OnRotate(45, 0.25)
	if v.DrumRotation() != 90 {
		t.Errorf("Expected drum rotation 90, got %v", v.DrumRotation())
	}
	if v.HandleRotation() != 180 {
		t.Errorf("Expected handle rotation 180, got %v", v.HandleRotation())
	}
	if v.ArrowRotation() != 135 {
		t.Errorf("Expected arrow rotation 135, got %v", v.ArrowRotation())
	}
}

func TestViewOnCompletePinsProgress(t *testing.T) {
	v, _ := newTestView()
	v.Dragging = true
	v.OnRotate(10, 0.99)
	v.OnComplete()

	if v.Progress != 1 || v.Dragging {
		t.Errorf("Expected progress 1 and drag ended, got %v dragging=%v", v.Progress, v.Dragging)
	}
}

func TestViewStageTiming(t *testing.T) {
	v, clock := newTestView()

	if v.StageActive(choreo.StageBallEmerging) {
		t.Fatal("Expected no stage active initially")
	}

	v.ApplyStage(choreo.StageBallEmerging)
	clock.Advance(1500 * time.Millisecond)

	elapsed, ok := v.StageElapsed(choreo.StageBallEmerging)
	if !ok || elapsed != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v (ok=%v)", elapsed, ok)
	}

	// Re-applying restarts the animation clock
	v.ApplyStage(choreo.StageBallEmerging)
	elapsed, _ = v.StageElapsed(choreo.StageBallEmerging)
	if elapsed != 0 {
		t.Errorf("Expected replay to restart at 0, got %v", elapsed)
	}

	v.ClearStages()
	if _, ok := v.StageElapsed(choreo.StageBallEmerging); ok {
		t.Error("Expected stage cleared")
	}
}

func TestViewReset(t *testing.T) {
	v, _ := newTestView()
	p := prize.DefaultPrizes()[0]

	v.OnRotate(90, 0.5)
	v.Dragging = true
	v.Prize = &p
	v.ApplyStage(choreo.StageResult)
	v.SetScreens(screen.Result, screen.None)
	v.Hover = true

	v.Reset()

	if v.Angle != 0 || v.Progress != 0 || v.Dragging || v.Prize != nil {
		t.Errorf("Expected visuals cleared, got angle=%v progress=%v dragging=%v prize=%v",
			v.Angle, v.Progress, v.Dragging, v.Prize)
	}
	if v.StageActive(choreo.StageResult) {
		t.Error("Expected stage flags cleared")
	}
	if v.Hover {
		t.Error("Expected hover cleared after reset")
	}
	// Screens are owned by the selector
	if v.Screen != screen.Result {
		t.Errorf("Expected screen untouched by Reset, got %v", v.Screen)
	}
}

func TestViewScreenChangeDropsHover(t *testing.T) {
	v, _ := newTestView()
	v.Hover = true
	v.SetScreens(screen.Main, screen.Confirm)
	if v.Hover {
		t.Error("Expected hover cleared when the visible screens change")
	}
}
