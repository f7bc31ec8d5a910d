package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume when nothing is configured
	DefaultVolume = 0.6

	// DefaultPulseFrequency is the tone used for haptic pulses
	DefaultPulseFrequency = 180.0
)

// Pulse Envelope
const (
	PulseAttack  = 5 * time.Millisecond
	PulseRelease = 20 * time.Millisecond
)

// Ratchet Click
const (
	ClickFrequency = 1400.0
	ClickDuration  = 15 * time.Millisecond
	ClickAttack    = 1 * time.Millisecond
	ClickRelease   = 10 * time.Millisecond

	// ClickStepDegrees is how much rotation accumulates between two clicks
	ClickStepDegrees = 30.0
)
