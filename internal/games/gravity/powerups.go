package gravity

import "math"

// PowerUps tracks absolute expiry timestamps on the sim clock.
type PowerUps struct {
	ghostUntil float64
	cloneUntil float64
	ghostSeen  bool // ghost was active at the previous expiry check
}

// Activate extends the kind's expiry to now+duration, never shortening it.
func (p *PowerUps) Activate(kind PowerKind, now, duration float64) {
	switch kind {
	case PowerGhost:
		p.ghostUntil = math.Max(p.ghostUntil, now+duration)
	case PowerClone:
		p.cloneUntil = math.Max(p.cloneUntil, now+duration)
	}
}

// Active reports whether kind is active at now.
func (p *PowerUps) Active(kind PowerKind, now float64) bool {
	return now < p.Until(kind)
}

// Until returns the absolute expiry of kind.
func (p *PowerUps) Until(kind PowerKind) float64 {
	if kind == PowerClone {
		return p.cloneUntil
	}
	return p.ghostUntil
}

// Remaining returns the seconds left on kind, zero when inactive.
func (p *PowerUps) Remaining(kind PowerKind, now float64) float64 {
	return math.Max(0, p.Until(kind)-now)
}

// GhostExpired reports, once, that the ghost went from active to inactive
// since the previous call.
func (p *PowerUps) GhostExpired(now float64) bool {
	active := p.Active(PowerGhost, now)
	expired := p.ghostSeen && !active
	p.ghostSeen = active
	return expired
}
