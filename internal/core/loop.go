package core

import "time"

// Simulation is what the Driver runs each frame.
type Simulation interface {
	// Step advances gameplay by dt seconds.
	Step(dt float64) StepResult
	// Present advances presentation-only timers (fades, crossfades).
	Present(dt float64)
	// Render paints the current state without mutating it.
	Render(c *Canvas)
	// State returns a snapshot for hosts.
	State() GameState
}

// Driver invokes a Simulation once per host frame with a clamped delta.
// Gameplay stops advancing on game over, but rendering continues so the
// final frame stays visible.
type Driver struct {
	sim     Simulation
	canvas  *Canvas
	clock   *FrameClock
	running bool
}

// NewDriver creates a driver rendering sim into canvas.
func NewDriver(sim Simulation, canvas *Canvas, maxDT float64) *Driver {
	return &Driver{
		sim:     sim,
		canvas:  canvas,
		clock:   NewFrameClock(maxDT),
		running: true,
	}
}

// Frame runs one host frame. It is a no-op after Stop.
func (d *Driver) Frame(now time.Time) GameState {
	if !d.running {
		return d.sim.State()
	}
	dt := d.clock.Advance(now)
	if !d.sim.State().GameOver {
		d.sim.Step(dt)
	}
	d.sim.Present(dt)
	d.sim.Render(d.canvas)
	return d.sim.State()
}

// Restart forgets the previous frame time, e.g. after a new run begins,
// so the first frame of the run does not inherit a stale delta.
func (d *Driver) Restart() {
	d.clock.Reset()
	d.running = true
}

// Stop cancels further frames. Hosts check Running before re-arming their
// frame callback.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether the driver still accepts frames.
func (d *Driver) Running() bool {
	return d.running
}

// Canvas returns the render target.
func (d *Driver) Canvas() *Canvas {
	return d.canvas
}
