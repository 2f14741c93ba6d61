package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// PluckGenerator is a short decaying tone with one overtone.
type PluckGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewPluckGenerator creates a pluck at freq Hz.
func NewPluckGenerator(sr beep.SampleRate, freq float64) *PluckGenerator {
	return &PluckGenerator{sr: sr, freq: freq}
}

func (g *PluckGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 30)
		sample := envelope * (0.25*math.Sin(2*math.Pi*g.freq*t) + 0.08*math.Sin(4*math.Pi*g.freq*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PluckGenerator) Err() error {
	return nil
}

// ExplosionGenerator is low-passed noise over a falling rumble.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	lp   float64
}

// NewExplosionGenerator creates an explosion. The seed fixes the noise pattern.
func NewExplosionGenerator(sr beep.SampleRate, seed int64) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: seed}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 5)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.lp += 0.15 * (noise - g.lp)

		rumble := 0.3 * math.Sin(2*math.Pi*(70-30*t)*t)
		sample := envelope * (0.45*g.lp + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// ChimeGenerator plays two rising notes.
type ChimeGenerator struct {
	sr    beep.SampleRate
	pos   int
	split int
}

// NewChimeGenerator creates a pickup chime.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, split: sr.N(60 * time.Millisecond)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq, start := 880.0, 0
		if g.pos >= g.split {
			freq, start = 1320.0, g.split
		}
		t := float64(g.pos-start) / float64(g.sr)
		sample := 0.2 * math.Exp(-t*18) * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
