package audio

import (
	"math"

	"github.com/lixenwraith/garapon/constants"
)

// Clicker plays one tick
type Clicker interface {
	Click()
}

// Ratchet ticks every ClickStepDegrees of accumulated rotation
// Registered as a rotation observer on the tracker
type Ratchet struct {
	clicker Clicker
	step    int
}

// NewRatchet creates a ratchet driving clicker
func NewRatchet(clicker Clicker) *Ratchet {
	return &Ratchet{clicker: clicker}
}

// OnRotate implements gesture.Observer
func (r *Ratchet) OnRotate(angle, progress float64) {
	step := int(math.Floor(progress * constants.TargetRotation / constants.ClickStepDegrees))
	if step > r.step {
		r.step = step
		r.clicker.Click()
	}
}

// OnComplete implements gesture.Observer
func (r *Ratchet) OnComplete() {}

// Reset rearms the ratchet for a new session
func (r *Ratchet) Reset() {
	r.step = 0
}
