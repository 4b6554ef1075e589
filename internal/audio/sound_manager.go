// Package audio plays the game's sound effects through the local speaker.
// Every effect is synthesized, so no sound files are needed. When the
// speaker cannot be initialized the manager stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds are actually played.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
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

// play queues a finite streamer on the mixer.
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

// PlayCollect plays the short rising chirp for a collected bomb.
func (sm *SoundManager) PlayCollect() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*90), NewSweepGenerator(sampleRate, 660, 1320, time.Millisecond*90)))
}

// PlayJump plays the launch whoosh.
func (sm *SoundManager) PlayJump() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*140), NewSweepGenerator(sampleRate, 220, 440, time.Millisecond*140)))
}

// PlayClear plays the round clear jingle.
func (sm *SoundManager) PlayClear() {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	step := time.Millisecond * 120
	sm.play(beep.Take(sampleRate.N(step*time.Duration(len(notes))), NewArpeggioGenerator(sampleRate, notes, step)))
}

// SweepGenerator generates a sine tone gliding from one frequency to another.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Linear fade out avoids a click at the end
		sample := 0.25 * (1 - progress) * math.Sin(g.phase)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a sequence of square-ish notes, each lasting step.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int
	pos   int
}

// NewArpeggioGenerator creates an arpeggio generator.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, step time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, notes: notes, step: sr.N(step)}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.step) % len(g.notes)
		t := float64(g.pos) / float64(g.sr)
		within := float64(g.pos%g.step) / float64(g.step)

		freq := g.notes[idx]
		sample := 0.2 * math.Sin(2*math.Pi*freq*t)
		sample += 0.07 * math.Sin(2*math.Pi*freq*3*t)
		sample *= 1 - within

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
