package gravity

import (
	"fmt"
	"image"
	"math"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// Render draws the current state into c. It never mutates the game.
func (g *Game) Render(c *core.Canvas) {
	g.drawBackground(c)

	// Guide lines
	c.HLine(g.cfg.Canvas.CeilingY+g.cfg.Player.Height, 2, core.ColorGuide)
	c.HLine(g.cfg.Canvas.GroundY, 2, core.ColorGuide)

	for _, e := range g.entities {
		switch e := e.(type) {
		case *Gate:
			g.drawGate(c, e)
		case *Obstacle:
			g.drawObstacle(c, e)
		}
	}
	for _, p := range g.pickups {
		g.drawPickup(c, p)
	}
	g.drawPlayer(c)
	g.drawHUD(c)
}

func (g *Game) image(name string) image.Image {
	if g.media == nil {
		return nil
	}
	return g.media.Image(name)
}

func (g *Game) drawBackground(c *core.Canvas) {
	c.Fill(core.ColorBackdrop)
	if g.media == nil {
		return
	}

	cur, prev, progress := g.theme.Background()
	if progress < 1 {
		if img := g.media.Background(prev, g.clock); img != nil {
			c.DrawCover(img, 1)
		}
		if progress <= 0 {
			return
		}
	}
	if img := g.media.Background(cur, g.clock); img != nil {
		c.DrawCover(img, progress)
	}
}

func (g *Game) drawGate(c *core.Canvas, gt *Gate) {
	top, bottom := g.holeSpan(gt)
	ceiling, ground := g.cfg.Canvas.CeilingY, g.cfg.Canvas.GroundY
	if top > ceiling {
		c.FillRect(core.NewRectF(gt.X, ceiling, gt.Width, top-ceiling), core.ColorGate)
	}
	if bottom < ground {
		c.FillRect(core.NewRectF(gt.X, bottom, gt.Width, ground-bottom), core.ColorGate)
	}
}

func (g *Game) drawObstacle(c *core.Canvas, o *Obstacle) {
	box := g.obstacleBox(o)
	opts := core.ImageOptions{FlipV: o.Lane == LaneTop}

	t := o.LocalTime
	switch o.Behavior {
	case BehaviorWiggle:
		box.X += math.Sin(t*12) * 3
	case BehaviorFall:
		// Bob away from the lane line and back.
		d := math.Abs(math.Sin(t*3)) * 6
		if o.Lane == LaneTop {
			box.Y += d
		} else {
			box.Y -= d
		}
	case BehaviorSlide:
		box.X += math.Sin(t*4) * 10
	case BehaviorSpin:
		opts.Angle = t * 4
	}

	if img := g.image(o.Color.Sprite()); img != nil {
		c.DrawImage(img, box, opts)
		return
	}
	c.FillRect(box, o.Color.Fallback())
}

func (g *Game) drawPickup(c *core.Canvas, p *Pickup) {
	box := g.pickupBox(p)
	col, label := core.ColorGhost, "G"
	if p.Kind == PowerClone {
		col, label = core.ColorClone, "C"
	}
	c.FillRect(box.Inset(-2), core.Fade(col, 0.85))
	c.Text(int(box.X+box.W/2)-3, int(box.Y+box.H/2)+4, label, core.ColorBackdrop)
}

func (g *Game) drawPlayer(c *core.Canvas) {
	now := g.run.Elapsed
	box := g.playerBox()
	top := g.lane.Blend() > 0.5

	alpha := 1.0
	if g.power.Active(PowerGhost, now) {
		alpha = 0.45
	}
	g.drawSkin(c, box, top, alpha)

	if g.power.Active(PowerClone, now) {
		mirror := box
		mirror.Y = core.Lerp(g.laneTop(LaneTop), g.laneTop(LaneBottom), g.lane.Blend())
		g.drawSkin(c, mirror, !top, alpha*0.55)
	}
}

func (g *Game) drawSkin(c *core.Canvas, box core.RectF, flip bool, alpha float64) {
	if img := g.image(g.character.Sprite()); img != nil {
		c.DrawImage(img, box, core.ImageOptions{FlipV: flip, Alpha: alpha})
		return
	}
	c.FillRect(box, core.Fade(g.character.Tint, alpha))
}

func (g *Game) drawHUD(c *core.Canvas) {
	lines := g.HUDLines()
	for i, s := range lines {
		y := 24 + i*18
		c.Text(17, y+1, s, core.ColorHUDShadow)
		c.Text(16, y, s, core.ColorHUD)
	}

	switch {
	case g.run.stopped && g.spawner != nil:
		g.drawOverlay(c, "GAME OVER", fmt.Sprintf("Final score: %d   R to restart", g.run.Score))
	case g.locked:
		g.drawOverlay(c, "LOCKED", "Sign in to play")
	case g.Loading():
		g.drawOverlay(c, "LOADING", "")
	}
}

func (g *Game) drawOverlay(c *core.Canvas, title, sub string) {
	h := float64(c.Height())
	c.FillRect(core.NewRectF(0, h/2-30, float64(c.Width()), 60), core.ColorOverlay)
	c.TextCentered(int(h/2)-4, title, core.ColorHUD)
	if sub != "" {
		c.TextCentered(int(h/2)+16, sub, core.ColorHUD)
	}
}

// HUDLines returns the heads-up text, also used by hosts that draw their own HUD.
func (g *Game) HUDLines() []string {
	lines := []string{
		fmt.Sprintf("Score: %d", g.run.Score),
		fmt.Sprintf("Vel: %d km/s", int(math.Round(g.run.Speed))),
		fmt.Sprintf("Best: %d", g.highScore),
	}
	for _, k := range []PowerKind{PowerGhost, PowerClone} {
		if left := g.PowerRemaining(k); left > 0 {
			lines = append(lines, fmt.Sprintf("%s %.1fs", k, left))
		}
	}
	return lines
}
