package choreo

import "time"

// Stage is one discrete visual-state activation
type Stage int

const (
	StageIdle         Stage = iota // Nothing shown beyond the main screen
	StageDrumRevealed              // Spin screen visible, drum accepts drags
	StageBallEmerging              // Small ball leaves the drum
	StageBallArrived               // Large ball rolls into view
	StageSuspense                  // "Which prize?" text
	StageResult                    // Terminal stage, prize revealed
	stageCount
)

var stageNames = [stageCount]string{
	StageIdle:         "idle",
	StageDrumRevealed: "drum_revealed",
	StageBallEmerging: "ball_emerging",
	StageBallArrived:  "ball_arrived",
	StageSuspense:     "suspense",
	StageResult:       "result",
}

func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "unknown"
	}
	return stageNames[s]
}

// Step is a stage and its delay after the previous step was applied
type Step struct {
	Stage Stage
	Delay time.Duration
}

// Sink is the presentation side of stage activation
type Sink interface {
	// ClearStages returns every stage flag to its pre-run value
	ClearStages()
	// ApplyStage activates one stage; re-applying a stage restarts its transition
	ApplyStage(stage Stage)
}

// Haptics is an optional host capability for pulse feedback
type Haptics interface {
	Supported() bool
	// Vibrate plays alternating pulse and pause durations, starting with a pulse
	Vibrate(pattern []time.Duration)
}
