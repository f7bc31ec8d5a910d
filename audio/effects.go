package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/garapon/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed with Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePulse generates one haptic pulse, a low square buzz lasting d
func CreatePulse(s Settings, d time.Duration) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	osc := NewOscillator(s.PulseHz, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, constants.PulseAttack, constants.PulseRelease, rate)
	return newVolume(shaped, 0.5)
}

// CreatePattern renders alternating pulse/pause durations as one stream
// Even indices are pulses, odd indices are silence
func CreatePattern(s Settings, pattern []time.Duration) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	parts := make([]beep.Streamer, 0, len(pattern))
	for i, d := range pattern {
		if d <= 0 {
			continue
		}
		if i%2 == 0 {
			parts = append(parts, CreatePulse(s, d))
		} else {
			parts = append(parts, beep.Silence(rate.N(d)))
		}
	}
	return newVolume(beep.Seq(parts...), s.Volume)
}

// CreateClick generates the short ratchet tick heard while the drum turns
func CreateClick(s Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	osc := NewOscillator(constants.ClickFrequency, constants.ClickDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.ClickDuration, constants.ClickAttack, constants.ClickRelease, rate)
	return newVolume(shaped, s.Volume*0.5)
}
