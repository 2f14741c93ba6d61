// Package audio turns game cues into short synthesized sounds played
// through the system speaker. Audio is optional: every operation is safe
// without an initialized device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ball-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink receives audio cues from the game loop.
type Sink interface {
	Play(cue core.Cue)
}

// Muter is implemented by sinks that can be silenced at runtime.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Nop is a Sink that discards every cue.
type Nop struct{}

// Play implements Sink.
func (Nop) Play(core.Cue) {}

// SoundManager mixes cue sounds onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the device.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback. The manager can be initialized again afterwards.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without closing the device.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues the sound for cue. Unknown cues are ignored.
func (sm *SoundManager) Play(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s, ok := Streamer(cue)
	if !ok {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Streamer returns a finite streamer for cue.
func Streamer(cue core.Cue) (beep.Streamer, bool) {
	switch cue {
	case core.CueBounceA:
		return beep.Take(sampleRate.N(120*time.Millisecond), NewPluckGenerator(sampleRate, 660)), true
	case core.CueBounceB:
		return beep.Take(sampleRate.N(120*time.Millisecond), NewPluckGenerator(sampleRate, 440)), true
	case core.CueExplosion:
		return beep.Take(sampleRate.N(600*time.Millisecond), NewExplosionGenerator(sampleRate, 1)), true
	case core.CueCollect:
		return beep.Take(sampleRate.N(180*time.Millisecond), NewChimeGenerator(sampleRate)), true
	default:
		return nil, false
	}
}
