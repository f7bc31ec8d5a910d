// Package audio renders haptic pulse patterns and ratchet clicks through the speaker.
// A terminal has no vibration motor, so pulses are audible; when no audio device is available
// the player reports itself unsupported and every call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/garapon/constants"
)

// Settings configures the generated sounds
type Settings struct {
	SampleRate int
	Volume     float64
	PulseHz    float64
	Click      bool
}

// DefaultSettings returns the built-in sound settings
func DefaultSettings() Settings {
	return Settings{
		SampleRate: constants.AudioSampleRate,
		Volume:     constants.DefaultVolume,
		PulseHz:    constants.DefaultPulseFrequency,
		Click:      true,
	}
}

// Player owns the speaker mixer
type Player struct {
	mu          sync.Mutex
	settings    Settings
	mixer       *beep.Mixer
	play        func(beep.Streamer)
	initialized bool
}

// NewPlayer creates an uninitialized player
func NewPlayer(s Settings) *Player {
	p := &Player{
		settings: s,
		mixer:    &beep.Mixer{},
	}
	p.play = p.playSpeaker
	return p
}

// Init opens the speaker; failure leaves the player unsupported
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.settings.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Supported implements choreo.Haptics
func (p *Player) Supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Vibrate implements choreo.Haptics
func (p *Player) Vibrate(pattern []time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(pattern) == 0 {
		return
	}
	p.play(CreatePattern(p.settings, pattern))
}

// Click plays one ratchet tick
func (p *Player) Click() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.settings.Click {
		return
	}
	p.play(CreateClick(p.settings))
}

// playSpeaker hands a stream to the mixer, which the speaker reads on its own goroutine
func (p *Player) playSpeaker(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
