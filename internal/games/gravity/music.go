package gravity

import "github.com/vovakirdan/gravity-runner/internal/core"

// AudioSink plays looping music tracks by name.
type AudioSink interface {
	Play(track string)
	Pause(track string)
	SetVolume(track string, v float64)
}

type nullSink struct{}

func (nullSink) Play(string)               {}
func (nullSink) Pause(string)              {}
func (nullSink) SetVolume(string, float64) {}

// fadeTask ramps one track's gain.
type fadeTask struct {
	from, to float64
	elapsed  float64
	duration float64
	pause    bool // pause the track once the ramp finishes
}

// FadeTable maps each track to its in-flight fade. It is advanced once per
// frame by the owner; nothing runs on its own timer.
type FadeTable struct {
	tasks  map[Track]*fadeTask
	levels map[Track]float64
}

// NewFadeTable creates an empty table with every track silent.
func NewFadeTable() *FadeTable {
	return &FadeTable{
		tasks:  make(map[Track]*fadeTask),
		levels: make(map[Track]float64),
	}
}

// Start replaces any fade on t with a ramp from its current level to target.
func (f *FadeTable) Start(t Track, target, duration float64, pauseAtEnd bool) {
	f.tasks[t] = &fadeTask{
		from:     f.levels[t],
		to:       target,
		duration: duration,
		pause:    pauseAtEnd,
	}
}

// Set jumps t to level v, cancelling any fade.
func (f *FadeTable) Set(t Track, v float64) {
	delete(f.tasks, t)
	f.levels[t] = v
}

// Advance steps every fade by dt and pushes the new gains to sink.
func (f *FadeTable) Advance(dt float64, sink AudioSink) {
	for _, t := range Tracks {
		task, ok := f.tasks[t]
		if !ok {
			continue
		}
		task.elapsed += dt
		p := 1.0
		if task.duration > 0 {
			p = core.ClampF(task.elapsed/task.duration, 0, 1)
		}
		level := core.Lerp(task.from, task.to, p)
		f.levels[t] = level
		sink.SetVolume(t.String(), level)
		if p >= 1 {
			delete(f.tasks, t)
			if task.pause {
				sink.Pause(t.String())
			}
		}
	}
}

// Level returns the current gain of t.
func (f *FadeTable) Level(t Track) float64 {
	return f.levels[t]
}

// Active reports whether t has a fade in flight.
func (f *FadeTable) Active(t Track) bool {
	_, ok := f.tasks[t]
	return ok
}

// Music crossfades between score-banded tracks.
type Music struct {
	sink    AudioSink
	fades   *FadeTable
	volume  float64
	fadeDur float64
	current Track
	playing bool
}

// NewMusic wraps sink; a nil sink makes every call a no-op.
func NewMusic(sink AudioSink, volume, fadeSecs float64) *Music {
	if sink == nil {
		sink = nullSink{}
	}
	return &Music{
		sink:    sink,
		fades:   NewFadeTable(),
		volume:  volume,
		fadeDur: fadeSecs,
	}
}

// Start fades in t from silence, fading out whatever was playing.
func (m *Music) Start(t Track) {
	if m.playing && m.current != t {
		m.fades.Start(m.current, 0, m.fadeDur, true)
	}
	m.fades.Set(t, 0)
	m.sink.SetVolume(t.String(), 0)
	m.sink.Play(t.String())
	m.fades.Start(t, m.volume, m.fadeDur, false)
	m.current = t
	m.playing = true
}

// Switch crossfades to t. Switching to the current track is a no-op.
func (m *Music) Switch(t Track) {
	if m.playing && t == m.current {
		return
	}
	m.Start(t)
}

// FadeOut ramps the current track to silence and pauses it.
func (m *Music) FadeOut() {
	if !m.playing {
		return
	}
	m.fades.Start(m.current, 0, m.fadeDur, true)
	m.playing = false
}

// Advance steps the fades.
func (m *Music) Advance(dt float64) {
	m.fades.Advance(dt, m.sink)
}

// Current returns the track last started and whether it is still playing.
func (m *Music) Current() (Track, bool) {
	return m.current, m.playing
}

// Fades exposes the fade table for inspection.
func (m *Music) Fades() *FadeTable {
	return m.fades
}
