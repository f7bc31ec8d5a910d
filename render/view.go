package render

import (
	"time"

	"github.com/lixenwraith/garapon/choreo"
	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/engine"
	"github.com/lixenwraith/garapon/prize"
	"github.com/lixenwraith/garapon/screen"
)

// View is the presentation state the renderer draws from
// It receives the tracker's rotation output and the sequencer's stage flags
type View struct {
	clock engine.Clock

	Angle    float64 // pointer bearing, degrees
	Progress float64 // [0, 1]
	Dragging bool    // drum grabbed
	Hover    bool    // pointer over the idle drum

	Screen  screen.ID
	Overlay screen.ID
	Prize   *prize.Prize

	stageAt map[choreo.Stage]time.Time
}

// NewView creates a view in its initial state
func NewView(clock engine.Clock) *View {
	return &View{
		clock:   clock,
		Screen:  screen.Main,
		stageAt: make(map[choreo.Stage]time.Time),
	}
}

// OnRotate implements gesture.Observer
func (v *View) OnRotate(angle, progress float64) {
	v.Angle = angle
	v.Progress = progress
}

// OnComplete implements gesture.Observer
func (v *View) OnComplete() {
	v.Progress = 1
	v.Dragging = false
}

// ClearStages implements choreo.Sink
func (v *View) ClearStages() {
	clear(v.stageAt)
}

// ApplyStage implements choreo.Sink
// Each application stamps a fresh start time, so a re-applied stage replays its animation from the beginning
func (v *View) ApplyStage(stage choreo.Stage) {
	v.stageAt[stage] = v.clock.Now()
}

// StageActive reports whether a stage flag is set
func (v *View) StageActive(stage choreo.Stage) bool {
	_, ok := v.stageAt[stage]
	return ok
}

// StageElapsed returns time since the stage was applied
func (v *View) StageElapsed(stage choreo.Stage) (time.Duration, bool) {
	at, ok := v.stageAt[stage]
	if !ok {
		return 0, false
	}
	return v.clock.Now().Sub(at), true
}

// SetScreens mirrors the screen selector; hover is dropped since the pointer target changed
func (v *View) SetScreens(active, overlay screen.ID) {
	v.Screen = active
	v.Overlay = overlay
	v.Hover = false
}

// Reset returns every visual to its initial value
func (v *View) Reset() {
	v.Angle = 0
	v.Progress = 0
	v.Dragging = false
	v.Hover = false
	v.Prize = nil
	v.ClearStages()
}

// DrumRotation is the drum's turn in degrees, following accumulated progress
func (v *View) DrumRotation() float64 {
	return v.Progress * constants.TargetRotation
}

// HandleRotation turns the crank faster than the drum
func (v *View) HandleRotation() float64 {
	return v.DrumRotation() * constants.HandleRotationRatio
}

// ArrowRotation points the arrow along the clockwise tangent at the pointer bearing
func (v *View) ArrowRotation() float64 {
	return v.Angle + constants.ArrowAngleOffset
}
