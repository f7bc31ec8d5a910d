// Package game wires the rotation tracker, the choreography sequencer and the screens into one
// play session. Every method runs on the main loop goroutine.
package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/garapon/audio"
	"github.com/lixenwraith/garapon/choreo"
	"github.com/lixenwraith/garapon/engine"
	"github.com/lixenwraith/garapon/gesture"
	"github.com/lixenwraith/garapon/prize"
	"github.com/lixenwraith/garapon/render"
	"github.com/lixenwraith/garapon/screen"
)

// Stats counts session events; not persisted
type Stats struct {
	Spins       int // confirmed draws
	Completions int // full turns reached
	Prizes      int // result stages shown
	Resets      int
}

// Game is the controller for one terminal session
type Game struct {
	log   *zap.Logger
	area  *render.TouchArea
	table *prize.Table
	rng   prize.RandomSource

	view      *render.View
	screens   *screen.Selector
	tracker   *gesture.Tracker
	sequencer *choreo.Sequencer
	ratchet   *audio.Ratchet

	haptics choreo.Haptics
	clicker audio.Clicker

	pressed bool // mouse button 1 held
	stats   Stats
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRNG sets the prize draw source
func WithRNG(rng prize.RandomSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithHaptics sets the pulse output for the result stage
func WithHaptics(h choreo.Haptics) Option {
	return func(g *Game) { g.haptics = h }
}

// WithClicker enables ratchet ticks while the drum turns
func WithClicker(c audio.Clicker) Option {
	return func(g *Game) { g.clicker = c }
}

// New creates a game on the main screen
func New(clock engine.Clock, scheduler engine.Scheduler, area *render.TouchArea, table *prize.Table, opts ...Option) *Game {
	g := &Game{
		log:   zap.NewNop(),
		area:  area,
		table: table,
		rng:   prize.DefaultRNG(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.view = render.NewView(clock)
	g.screens = screen.NewSelector()
	g.screens.OnChange(func(active, overlay screen.ID) {
		g.view.SetScreens(active, overlay)
		g.log.Debug("screen changed", zap.Stringer("active", active), zap.Stringer("overlay", overlay))
	})

	g.tracker = gesture.NewTracker(area, g.view)
	if g.clicker != nil {
		g.ratchet = audio.NewRatchet(g.clicker)
		g.tracker.AddObserver(g.ratchet)
	}
	g.tracker.AddObserver(completion{g})

	seqOpts := []choreo.Option{choreo.WithLogger(g.log.Named("choreo"))}
	if g.haptics != nil {
		seqOpts = append(seqOpts, choreo.WithHaptics(g.haptics))
	}
	g.sequencer = choreo.NewSequencer(scheduler, stageSink{g}, seqOpts...)

	return g
}

// View returns the presentation state for the renderer
func (g *Game) View() *render.View { return g.view }

// Screens returns the screen selector
func (g *Game) Screens() *screen.Selector { return g.screens }

// Tracker returns the rotation tracker
func (g *Game) Tracker() *gesture.Tracker { return g.tracker }

// Sequencer returns the choreography sequencer
func (g *Game) Sequencer() *choreo.Sequencer { return g.sequencer }

// Stats returns the session counters
func (g *Game) Stats() Stats { return g.stats }

// OpenConfirm asks whether to draw; only from the bare main screen
func (g *Game) OpenConfirm() {
	if g.screens.Active() != screen.Main || g.screens.Overlay() != screen.None {
		return
	}
	g.screens.ShowOverlay(screen.Confirm)
}

// Confirm accepts the draw and reveals the drum
func (g *Game) Confirm() {
	if g.screens.Overlay() != screen.Confirm {
		return
	}
	g.screens.Show(screen.Spin)
	g.sequencer.Arm()
	g.stats.Spins++
	g.log.Debug("draw confirmed", zap.Int("spins", g.stats.Spins))
}

// Decline cancels the draw
func (g *Game) Decline() {
	if g.screens.Overlay() != screen.Confirm {
		return
	}
	g.screens.ShowOverlay(screen.Cancel)
}

// Dismiss closes the cancel notice
func (g *Game) Dismiss() {
	if g.screens.Overlay() != screen.Cancel {
		return
	}
	g.screens.HideOverlay(screen.Cancel)
}

// Press handles button 1 going down on cell (x, y)
func (g *Game) Press(x, y int) {
	g.pressed = true

	switch {
	case g.screens.Overlay() == screen.Cancel:
		g.Dismiss()
	case g.screens.Overlay() != screen.None:
	case g.screens.Active() == screen.Main:
		if g.area.Contains(x, y) {
			g.OpenConfirm()
		}
	case g.screens.Active() == screen.Spin:
		if g.area.Contains(x, y) && !g.tracker.Completed() {
			g.tracker.Begin(render.CellToPoint(x, y))
			g.view.Dragging = g.tracker.Active()
		}
	case g.screens.Active() == screen.Result:
		g.Reset()
	}
}

// Hover handles pointer motion with no button held; lights the drum on the bare main screen
func (g *Game) Hover(x, y int) {
	g.view.Hover = g.screens.Active() == screen.Main &&
		g.screens.Overlay() == screen.None &&
		g.area.Contains(x, y)
}

// Drag handles motion with button 1 held; leaving the touch area ends the gesture
func (g *Game) Drag(x, y int) {
	if !g.tracker.Active() {
		return
	}
	if !g.area.Contains(x, y) {
		g.endGesture()
		return
	}
	g.tracker.Update(render.CellToPoint(x, y))
}

// Release handles button 1 going up
func (g *Game) Release() {
	g.pressed = false
	g.endGesture()
}

func (g *Game) endGesture() {
	if !g.tracker.Active() {
		return
	}
	g.tracker.End()
	g.view.Dragging = false
	g.log.Debug("gesture ended", zap.Float64("rotation", g.tracker.Rotation()))
}

// Reset returns every component to its initial state and shows the main screen
func (g *Game) Reset() {
	g.tracker.Reset()
	g.sequencer.Reset()
	g.view.Reset()
	if g.ratchet != nil {
		g.ratchet.Reset()
	}
	g.screens.Show(screen.Main)

	g.stats.Resets++
	g.log.Debug("game reset",
		zap.Int("spins", g.stats.Spins),
		zap.Int("completions", g.stats.Completions),
		zap.Int("resets", g.stats.Resets))
}

// completion starts the choreography when the tracker reports a full turn
type completion struct{ g *Game }

func (c completion) OnRotate(angle, progress float64) {}

func (c completion) OnComplete() {
	c.g.stats.Completions++
	c.g.log.Debug("spin complete", zap.Int("completions", c.g.stats.Completions))
	c.g.sequencer.Start()
}

// stageSink forwards stages to the view and switches screens as the run advances
type stageSink struct{ g *Game }

func (s stageSink) ClearStages() {
	s.g.view.ClearStages()
}

func (s stageSink) ApplyStage(stage choreo.Stage) {
	g := s.g
	switch stage {
	case choreo.StageBallEmerging:
		g.screens.Show(screen.Ball)
	case choreo.StageResult:
		p := g.table.Draw(g.rng)
		g.view.Prize = &p
		g.stats.Prizes++
		g.screens.Show(screen.Result)
		g.log.Info("prize drawn", zap.Int("rank", p.Rank), zap.String("name", p.Name))
	}
	g.view.ApplyStage(stage)
}
