package constants

import "time"

// Choreography Timing, each delay is relative to the previous stage being applied
const (
	// BallEmergingDelay applies immediately when the spin completes
	BallEmergingDelay = 0 * time.Millisecond

	// BallArrivedDelay is the time the small ball takes to leave the drum
	BallArrivedDelay = 2000 * time.Millisecond

	// SuspenseDelay is the time the large ball takes to roll in
	SuspenseDelay = 3000 * time.Millisecond

	// ResultDelay is how long the "which prize?" text lingers before the reveal
	ResultDelay = 2000 * time.Millisecond

	// ChoreographyDuration is the total time from start to the result stage
	ChoreographyDuration = BallEmergingDelay + BallArrivedDelay + SuspenseDelay + ResultDelay
)

// HapticPattern returns a fresh copy of the result pulse pattern
// Durations alternate pulse and pause, starting with a pulse
func HapticPattern() []time.Duration {
	return []time.Duration{
		100 * time.Millisecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		50 * time.Millisecond,
		200 * time.Millisecond,
	}
}
