// Package gesture converts pointer drags around a center into cumulative clockwise rotation.
//
// Screen coordinates grow downward, so a positive bearing delta is clockwise as seen by the user.
// The Tracker is a one-way ratchet: counter-clockwise motion keeps the bearing continuous but
// never reduces the accumulated rotation.
package gesture

import (
	"math"

	"github.com/lixenwraith/garapon/constants"
)

// Point is an absolute pointer position
type Point struct {
	X, Y float64
}

// Rect is the bounding box of the interactive region
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Region is the geometry query for the interactive area
// Queried on every Begin since the area may move or resize between sessions
type Region interface {
	Bounds() Rect
}

// Observer receives the tracker's output signals
type Observer interface {
	// OnRotate receives the instantaneous bearing in degrees and progress in [0, 1]
	OnRotate(angle, progress float64)
	// OnComplete fires once per session when a full turn has accumulated
	OnComplete()
}

// Tracker holds one RotationSession
type Tracker struct {
	region    Region
	observers []Observer

	center    Point
	lastAngle float64
	rotation  float64
	angle     float64

	started   bool // session exists, Begin has been called since the last Reset
	active    bool
	completed bool
}

// NewTracker creates a tracker bound to a region; observers are notified in registration order
func NewTracker(region Region, observers ...Observer) *Tracker {
	return &Tracker{
		region:    region,
		observers: observers,
	}
}

// AddObserver registers another output sink
func (t *Tracker) AddObserver(o Observer) {
	t.observers = append(t.observers, o)
}

// Begin starts a drag gesture at p
// The first Begin after a Reset opens a new session at zero rotation; later Begins resume it
func (t *Tracker) Begin(p Point) {
	if t.completed {
		return
	}

	t.center = t.region.Bounds().Center()
	if !t.started {
		t.rotation = 0
		t.started = true
	}

	t.lastAngle = Bearing(t.center, p)
	t.angle = t.lastAngle
	t.active = true
}

// Update feeds one pointer sample
func (t *Tracker) Update(p Point) {
	if !t.active {
		return
	}

	newAngle := Bearing(t.center, p)
	delta := WrapDelta(t.lastAngle, newAngle)

	if delta > 0 {
		t.rotation += delta
	}

	t.lastAngle = newAngle
	t.angle = newAngle

	done := t.rotation >= constants.TargetRotation-constants.RotationEpsilon
	progress := t.Progress()
	if done {
		progress = 1
	}

	for _, o := range t.observers {
		o.OnRotate(t.angle, progress)
	}

	if done {
		t.active = false
		t.completed = true
		for _, o := range t.observers {
			o.OnComplete()
		}
	}
}

// End marks the gesture finished; accumulated rotation is kept
func (t *Tracker) End() {
	if t.completed {
		return
	}
	t.active = false
}

// Reset returns the tracker to its pre-Begin state, valid at any time including mid-drag
func (t *Tracker) Reset() {
	t.center = Point{}
	t.lastAngle = 0
	t.rotation = 0
	t.angle = 0
	t.started = false
	t.active = false
	t.completed = false
}

// Rotation returns the cumulative clockwise rotation in degrees
func (t *Tracker) Rotation() float64 {
	return t.rotation
}

// Progress returns min(rotation/360, 1)
func (t *Tracker) Progress() float64 {
	if t.completed {
		return 1
	}
	return math.Min(t.rotation/constants.TargetRotation, 1)
}

// Angle returns the last pointer bearing in degrees
func (t *Tracker) Angle() float64 {
	return t.angle
}

// Active reports whether a drag is in progress
func (t *Tracker) Active() bool {
	return t.active
}

// Completed reports whether a full turn was reached since the last Reset
func (t *Tracker) Completed() bool {
	return t.completed
}

// Bearing returns the angle of p around center in degrees, in (-180, 180]
func Bearing(center, p Point) float64 {
	angle := math.Atan2(p.Y-center.Y, p.X-center.X) * (180 / math.Pi)
	if angle <= -180 {
		angle += 360
	}
	return angle
}

// WrapDelta returns to-from folded into (-180, 180], taking the shorter path
// An exact half turn resolves to +180 and therefore counts as clockwise
func WrapDelta(from, to float64) float64 {
	delta := to - from
	if delta > 180 {
		delta -= 360
	}
	if delta <= -180 {
		delta += 360
	}
	return delta
}
