package audio

import (
	"math"
	"sync"
	"time"

	"snake-arena/game/manager"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)

	eatFreq      = 880.0 // Short high blip
	eatDuration  = 80 * time.Millisecond
	crashFreq    = 110.0 // Low buzz
	crashLength  = 400 * time.Millisecond
	winFreq      = 660.0
	winDuration  = 600 * time.Millisecond
	effectVolume = 0.25
)

// SoundManager plays one-shot effects for game outcomes
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops all queued sounds.
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

// React queues the effect for a frame outcome, if any.
func (sm *SoundManager) React(v manager.Verdict, state manager.GameState) {
	s := Effect(v, state)
	if s == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Effect builds the streamer for an outcome. Returns nil when nothing should play.
func Effect(v manager.Verdict, state manager.GameState) beep.Streamer {
	switch {
	case state == manager.BoardFull:
		return beep.Take(sampleRate.N(winDuration), NewToneGenerator(sampleRate, winFreq, 0))
	case v.Fatal():
		return beep.Take(sampleRate.N(crashLength), NewToneGenerator(sampleRate, crashFreq, 2))
	case v == manager.FoodCollision:
		return beep.Take(sampleRate.N(eatDuration), NewToneGenerator(sampleRate, eatFreq, 0))
	}
	return nil
}

// ToneGenerator is a sine tone with optional harmonics and a short attack.
type ToneGenerator struct {
	sr        beep.SampleRate
	freq      float64
	harmonics int
	pos       int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, harmonics int) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		freq:      freq,
		harmonics: harmonics,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2 * math.Pi * g.freq * t)
		amp := 0.5
		for h := 2; h <= g.harmonics+1; h++ {
			sample += amp * math.Sin(2*math.Pi*g.freq*float64(h)*t)
			amp /= 2
		}

		// 10ms attack to avoid clicks
		envelope := math.Min(t/0.01, 1.0)
		sample *= envelope * effectVolume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
