// Package choreo runs the fixed, timed stage sequence that follows a completed spin.
//
// Stages are chained: each stage's callback applies it and only then schedules the next, so
// stages always apply in order and total latency is the sum of the per-stage delays. Every run
// carries a generation token; Reset and Start bump it, and a callback whose captured generation
// no longer matches does nothing.
package choreo

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/garapon/constants"
	"github.com/lixenwraith/garapon/engine"
)

// DefaultSteps is the run that follows a completed spin
func DefaultSteps() []Step {
	return []Step{
		{Stage: StageBallEmerging, Delay: constants.BallEmergingDelay},
		{Stage: StageBallArrived, Delay: constants.BallArrivedDelay},
		{Stage: StageSuspense, Delay: constants.SuspenseDelay},
		{Stage: StageResult, Delay: constants.ResultDelay},
	}
}

// Sequencer drives one ChoreographyRun at a time
type Sequencer struct {
	scheduler engine.Scheduler
	sink      Sink
	haptics   Haptics
	log       *zap.Logger

	steps      []Step
	pattern    []time.Duration
	stage      Stage
	generation uint64
	running    bool
}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithHaptics sets the pulse capability used on the terminal stage
func WithHaptics(h Haptics) Option {
	return func(s *Sequencer) { s.haptics = h }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSteps replaces the default run
func WithSteps(steps []Step) Option {
	return func(s *Sequencer) { s.steps = steps }
}

// WithHapticPattern replaces the default pulse pattern; the slice is copied
func WithHapticPattern(pattern []time.Duration) Option {
	return func(s *Sequencer) { s.pattern = slices.Clone(pattern) }
}

// NewSequencer creates an idle sequencer
func NewSequencer(scheduler engine.Scheduler, sink Sink, opts ...Option) *Sequencer {
	s := &Sequencer{
		scheduler: scheduler,
		sink:      sink,
		log:       zap.NewNop(),
		steps:     DefaultSteps(),
		pattern:   constants.HapticPattern(),
		stage:     StageIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Arm shows the drum, moving Idle to DrumRevealed
func (s *Sequencer) Arm() {
	if s.stage != StageIdle {
		return
	}
	s.stage = StageDrumRevealed
	s.sink.ApplyStage(StageDrumRevealed)
}

// Start begins a run; ignored unless Idle or DrumRevealed
func (s *Sequencer) Start() {
	if s.stage != StageIdle && s.stage != StageDrumRevealed {
		s.log.Debug("choreography start ignored", zap.Stringer("stage", s.stage))
		return
	}
	if len(s.steps) == 0 {
		return
	}

	s.generation++
	s.running = true
	s.sink.ClearStages()

	s.log.Debug("choreography started", zap.Uint64("generation", s.generation))
	s.schedule(s.generation, 0)
}

// schedule queues step i of the run identified by gen
func (s *Sequencer) schedule(gen uint64, i int) {
	step := s.steps[i]
	if step.Delay <= 0 {
		s.apply(gen, i)
		return
	}
	s.scheduler.AfterFunc(step.Delay, func() {
		s.apply(gen, i)
	})
}

// apply activates step i and chains the next one
func (s *Sequencer) apply(gen uint64, i int) {
	if gen != s.generation || !s.running {
		s.log.Debug("stale stage dropped",
			zap.Uint64("generation", gen),
			zap.Uint64("current", s.generation),
			zap.Stringer("stage", s.steps[i].Stage))
		return
	}

	step := s.steps[i]
	s.stage = step.Stage
	s.sink.ApplyStage(step.Stage)
	s.log.Debug("stage applied", zap.Stringer("stage", step.Stage), zap.Int("index", i))

	if i+1 < len(s.steps) {
		s.schedule(gen, i+1)
		return
	}

	s.running = false
	s.pulse()
}

// pulse requests the haptic pattern when the host supports it
func (s *Sequencer) pulse() {
	if s.haptics == nil || !s.haptics.Supported() {
		return
	}
	s.haptics.Vibrate(slices.Clone(s.pattern))
}

// Reset invalidates any in-flight run and clears every stage flag
func (s *Sequencer) Reset() {
	s.generation++
	s.running = false
	s.stage = StageIdle
	s.sink.ClearStages()
	s.log.Debug("choreography reset", zap.Uint64("generation", s.generation))
}

// Stage returns the most recently applied stage
func (s *Sequencer) Stage() Stage {
	return s.stage
}

// Running reports whether a run has stages still pending
func (s *Sequencer) Running() bool {
	return s.running
}

// Generation returns the current run token
func (s *Sequencer) Generation() uint64 {
	return s.generation
}
