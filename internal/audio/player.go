// Package audio plays the runner's looping music tracks through the system
// speaker. Each track is a paused-or-playing voice in a shared mixer; the game
// drives gains and pause state through Play, Pause and SetVolume.
package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// resampleQuality is passed to beep.Resample for wav overrides.
const resampleQuality = 4

type voice struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	source string // "synth" or the override file name
}

// Player is a speaker-backed music sink. It is safe to use before (or
// without) Start: state changes are recorded and simply produce no sound.
type Player struct {
	mu     sync.Mutex
	logger *log.Logger
	mixer  *beep.Mixer
	voices map[string]*voice
	live   bool
}

// New builds one voice per known track. When fsys holds music_<track>.wav it
// replaces the procedural loop for that track.
func New(fsys fs.FS, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
		voices: make(map[string]*voice),
	}
	for name, pat := range patterns {
		var src beep.Streamer = newSynth(sampleRate, pat)
		source := "synth"
		if fsys != nil {
			file := "music_" + name + ".wav"
			s, err := loadWAV(fsys, file)
			switch {
			case err == nil:
				src, source = s, file
			case !errors.Is(err, fs.ErrNotExist):
				logger.Warn("music override ignored", "file", file, "error", err)
			}
		}
		vol := &effects.Volume{Streamer: src, Base: 2, Silent: true}
		v := &voice{ctrl: &beep.Ctrl{Streamer: vol, Paused: true}, volume: vol, source: source}
		p.voices[name] = v
		p.mixer.Add(v.ctrl)
	}
	return p
}

// Start opens the speaker. On failure the player stays silent and the error is
// returned for logging; the game keeps running either way.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	p.logger.Debug("speaker started", "rate", int(sampleRate))
	return nil
}

// Close pauses every voice and detaches the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	speaker.Lock()
	for _, v := range p.voices {
		v.ctrl.Paused = true
	}
	speaker.Unlock()
	speaker.Clear()
	p.live = false
}

// Play resumes a track from where it was paused.
func (p *Player) Play(track string) {
	p.update(track, func(v *voice) { v.ctrl.Paused = false })
}

// Pause stops a track without rewinding it.
func (p *Player) Pause(track string) {
	p.update(track, func(v *voice) { v.ctrl.Paused = true })
}

// SetVolume sets a track's linear gain, clamped to 0..1.
func (p *Player) SetVolume(track string, gain float64) {
	p.update(track, func(v *voice) { applyGain(v.volume, gain) })
}

func (p *Player) update(track string, fn func(*voice)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.voices[track]
	if !ok {
		p.logger.Debug("unknown track", "track", track)
		return
	}
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn(v)
}

// Tracks lists the known track names in order.
func (p *Player) Tracks() []string {
	names := make([]string, 0, len(p.voices))
	for name := range p.voices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source reports whether a track plays the procedural loop ("synth") or a
// wav override.
func (p *Player) Source(track string) string {
	if v, ok := p.voices[track]; ok {
		return v.source
	}
	return ""
}

// applyGain maps linear gain onto beep's logarithmic volume.
func applyGain(vol *effects.Volume, gain float64) {
	if gain <= 0 || math.IsNaN(gain) {
		vol.Silent = true
		vol.Volume = 0
		return
	}
	if gain > 1 {
		gain = 1
	}
	vol.Silent = false
	vol.Volume = math.Log2(gain)
}

func loadWAV(fsys fs.FS, name string) (beep.Streamer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", name, err)
	}
	looped := beep.Loop(-1, stream)
	if format.SampleRate == sampleRate {
		return looped, nil
	}
	return beep.Resample(resampleQuality, format.SampleRate, sampleRate, looped), nil
}
