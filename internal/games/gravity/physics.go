package gravity

import (
	"math"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// playerBox returns the player's hit-box at its blended lane position.
func (g *Game) playerBox() core.RectF {
	y := core.Lerp(g.laneTop(LaneBottom), g.laneTop(LaneTop), g.lane.Blend())
	return core.NewRectF(g.cfg.Player.X, y, g.cfg.Player.Width, g.cfg.Player.Height)
}

// sweptOverlapX reports whether an entity that moved left by travel this
// frame, now spanning [x, x+w], crossed the player's horizontal extent at any
// point of the move. This keeps fast frames from tunnelling through.
func sweptOverlapX(x, w, travel float64, player core.RectF) bool {
	return x < player.Right() && x+w+travel > player.X
}

// physics moves the world by travel, resolves collisions, then scores.
// Collision priority: obstacles, then gates, then scoring.
func (g *Game) physics(dt, travel float64) {
	now := g.run.Elapsed
	for _, e := range g.entities {
		switch e := e.(type) {
		case *Obstacle:
			e.X -= travel
			e.LocalTime += dt
		case *Gate:
			e.X -= travel
		}
	}
	for _, p := range g.pickups {
		p.X -= travel
	}

	player := g.playerBox()
	lane := g.lane.Lane()
	ghost := g.power.Active(PowerGhost, now)

	if !ghost {
		for _, e := range g.entities {
			o, ok := e.(*Obstacle)
			if !ok || o.Passed || o.Fake || o.Lane != lane {
				continue
			}
			if sweptOverlapX(o.X, g.cfg.Obstacles.Width, travel, player) {
				g.gameOver()
				return
			}
		}
		for _, e := range g.entities {
			gt, ok := e.(*Gate)
			if !ok || gt.Passed || !sweptOverlapX(gt.X, gt.Width, travel, player) {
				continue
			}
			top, bottom := g.holeSpan(gt)
			if !player.ContainsY(top, bottom, g.cfg.Gates.HoleEpsilon) {
				g.gameOver()
				return
			}
		}
	}

	for _, e := range g.entities {
		x, w := g.entitySpan(e)
		if x+w >= player.X {
			continue
		}
		switch e := e.(type) {
		case *Obstacle:
			if e.Passed {
				continue
			}
			e.Passed = true
			if e.Fake || ghost || e.Lane != lane {
				g.award(now)
			}
		case *Gate:
			if e.Passed {
				continue
			}
			e.Passed = true
			g.award(now)
		}
	}

	g.collectPickups(player, travel, now)
	g.cull()
}

// award applies one scoring event.
func (g *Game) award(now float64) {
	points := 1
	if g.power.Active(PowerClone, now) {
		points++
	}
	if last, ok := g.lane.LastFlip(); ok && now-last <= g.cfg.Flip.StyleWindow {
		points++
	}

	prev := g.run.Score
	g.run.Score += points
	g.run.Speed = math.Min(g.run.Speed+g.cfg.Speed.Add, g.cfg.Speed.Max)
	g.run.PeakSpeed = math.Max(g.run.PeakSpeed, g.run.Speed)

	if iv := g.cfg.Gates.ScoreInterval; iv > 0 && g.run.Score/iv > prev/iv {
		g.spawner.ScheduleGate()
	}
	if g.theme.OnScore(g.run.Score, g.cfg.Theme, g.backgrounds()) {
		g.music.Switch(g.theme.Track())
	}
}

// collectPickups activates pickups touching the player within the vertical
// tolerance.
func (g *Game) collectPickups(player core.RectF, travel, now float64) {
	tol := g.cfg.PowerUps.Tolerance
	for _, p := range g.pickups {
		if p.Taken {
			continue
		}
		box := g.pickupBox(p)
		if !sweptOverlapX(box.X, box.W, travel, player) {
			continue
		}
		if box.Y-tol >= player.Bottom() || player.Y >= box.Bottom()+tol {
			continue
		}
		p.Taken = true
		switch p.Kind {
		case PowerGhost:
			g.power.Activate(PowerGhost, now, g.cfg.PowerUps.GhostSecs)
		case PowerClone:
			g.power.Activate(PowerClone, now, g.cfg.PowerUps.CloneSecs)
		}
	}
}

// cull drops entities fully past the left edge and taken pickups.
func (g *Game) cull() {
	margin := g.cfg.Obstacles.CullMargin
	kept := g.entities[:0]
	for _, e := range g.entities {
		if x, w := g.entitySpan(e); x+w >= -margin {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.entities); i++ {
		g.entities[i] = nil
	}
	g.entities = kept

	pk := g.pickups[:0]
	for _, p := range g.pickups {
		if !p.Taken && p.X+g.cfg.PowerUps.Size >= -margin {
			pk = append(pk, p)
		}
	}
	for i := len(pk); i < len(g.pickups); i++ {
		g.pickups[i] = nil
	}
	g.pickups = pk
}

// backgrounds returns how many background epochs exist, at least one.
func (g *Game) backgrounds() int {
	if g.media == nil {
		return 1
	}
	return core.Max(1, g.media.Backgrounds())
}
