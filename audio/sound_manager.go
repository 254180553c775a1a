package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the game's sound effects
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: -1},
	}
}

// Initialize opens the audio device. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup silences everything
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

// PlayEat plays a short rising blip
func (sm *SoundManager) PlayEat() {
	sm.play(beep.Seq(
		Tone(660, 40*time.Millisecond),
		Tone(880, 60*time.Millisecond),
	))
}

// PlayGameOver plays a falling buzz
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Seq(
		Tone(330, 120*time.Millisecond),
		Tone(220, 120*time.Millisecond),
		Tone(110, 250*time.Millisecond),
	))
}

// PlayWin plays a major arpeggio
func (sm *SoundManager) PlayWin() {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(120*time.Millisecond), sine))
	}
	sm.play(beep.Seq(parts...))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Tone returns a sine blip of freq Hz lasting d, with a fast decay envelope
func Tone(freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewBlipGenerator(sampleRate, freq))
}

// BlipGenerator generates a decaying sine tone
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip sound generator
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*12)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
