package gravity

// FlipArbiter collapses any number of flip requests between two steps into a
// single pending flag.
type FlipArbiter struct {
	pending bool
}

// Request records a flip intent. It is a no-op when blocked (stopped or
// locked) or when a flip is already pending.
func (a *FlipArbiter) Request(blocked bool) {
	if blocked || a.pending {
		return
	}
	a.pending = true
}

// Drain reports whether a flip was pending and clears the flag.
func (a *FlipArbiter) Drain() bool {
	p := a.pending
	a.pending = false
	return p
}

// Pending reports whether a flip is waiting for the next step.
func (a *FlipArbiter) Pending() bool {
	return a.pending
}

// Clear drops any pending request.
func (a *FlipArbiter) Clear() {
	a.pending = false
}
