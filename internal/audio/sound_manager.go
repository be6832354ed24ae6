package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	maxVoices  = 8
)

// Player plays sound cues.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}

// SoundManager plays cues through the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether cues are played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// SetEnabled turns playback on or off. Turning it off silences active cues.
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.enabled = on
	if !on && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Play queues c on the mixer. It does nothing before Initialize, while
// disabled, or when too many cues are already sounding.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(c.Stream(sampleRate))
}
