package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// pattern describes a procedural music loop: a bass root pulsing on every
// beat with an arpeggio stepping through semitone offsets above it.
type pattern struct {
	bpm   float64
	root  float64 // Hz
	steps []int   // semitones above root, one per eighth note
	drive float64 // 0 = pure sine, 1 = hard-clipped lead
}

var patterns = map[string]pattern{
	"exploration": {bpm: 96, root: 110, steps: []int{12, 19, 15, 19, 12, 17, 15, 10}, drive: 0},
	"battle":      {bpm: 132, root: 98, steps: []int{12, 12, 15, 12, 17, 15, 12, 10}, drive: 0.4},
	"boss":        {bpm: 156, root: 82.4, steps: []int{12, 13, 12, 18, 12, 13, 19, 18}, drive: 0.8},
}

// synth is an endless beep.Streamer rendering a pattern.
type synth struct {
	sr  beep.SampleRate
	p   pattern
	pos int
}

func newSynth(sr beep.SampleRate, p pattern) *synth {
	return &synth{sr: sr, p: p}
}

func (s *synth) Stream(samples [][2]float64) (n int, ok bool) {
	beat := s.sr.N(time.Duration(float64(time.Minute) / s.p.bpm))
	step := beat / 2
	for i := range samples {
		t := float64(s.pos) / float64(s.sr)

		// Bass with a short pluck envelope per beat.
		inBeat := float64(s.pos%beat) / float64(beat)
		bass := 0.22 * math.Exp(-inBeat*4) * math.Sin(2*math.Pi*s.p.root*t)

		// Arpeggio lead.
		idx := (s.pos / step) % len(s.p.steps)
		freq := s.p.root * math.Pow(2, float64(s.p.steps[idx])/12)
		inStep := float64(s.pos%step) / float64(step)
		lead := math.Sin(2 * math.Pi * freq * t)
		if s.p.drive > 0 {
			lead = math.Tanh(lead * (1 + 4*s.p.drive))
		}
		lead *= 0.12 * math.Exp(-inStep*3)

		v := bass + lead
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *synth) Err() error {
	return nil
}
