package gravity

import (
	"image/color"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// Lane is one of the two horizontal tracks.
type Lane int

const (
	LaneBottom Lane = iota // ground
	LaneTop                // ceiling
)

// Opposite returns the other lane.
func (l Lane) Opposite() Lane {
	if l == LaneTop {
		return LaneBottom
	}
	return LaneTop
}

func (l Lane) String() string {
	if l == LaneTop {
		return "top"
	}
	return "bottom"
}

// HydrantColor selects an obstacle sprite.
type HydrantColor int

const (
	HydrantGreen HydrantColor = iota
	HydrantRed
	HydrantBlue
	hydrantColors
)

// Sprite returns the media name of the hydrant sprite.
func (c HydrantColor) Sprite() string {
	switch c {
	case HydrantRed:
		return "hydrant_red"
	case HydrantBlue:
		return "hydrant_blue"
	default:
		return "hydrant_green"
	}
}

// Fallback returns the flat color used when the sprite is missing.
func (c HydrantColor) Fallback() color.NRGBA {
	switch c {
	case HydrantRed:
		return core.ColorRed
	case HydrantBlue:
		return core.ColorBlue
	default:
		return core.ColorGreen
	}
}

// Behavior is a purely visual animation of an obstacle.
type Behavior int

const (
	BehaviorStatic Behavior = iota
	BehaviorWiggle
	BehaviorFall
	BehaviorSlide
	BehaviorSpin
)

// dynamicBehaviors are picked uniformly when an obstacle is animated.
var dynamicBehaviors = []Behavior{BehaviorWiggle, BehaviorFall, BehaviorSlide, BehaviorSpin}

func (b Behavior) String() string {
	switch b {
	case BehaviorWiggle:
		return "wiggle"
	case BehaviorFall:
		return "fall"
	case BehaviorSlide:
		return "slide"
	case BehaviorSpin:
		return "spin"
	default:
		return "static"
	}
}

// Entity is a scrolling hazard: either *Obstacle or *Gate.
type Entity interface {
	isEntity()
}

// Obstacle is a hydrant standing on (or hanging from) one lane.
type Obstacle struct {
	X         float64
	Lane      Lane
	Passed    bool
	Color     HydrantColor
	Behavior  Behavior
	LocalTime float64 // seconds since spawn, drives the behavior animation
	Fake      bool    // never collides, always scores
}

func (*Obstacle) isEntity() {}

// Gate spans both lanes and leaves a single hole sized to the player.
// HolePosition is fixed at creation: 0 puts the hole against the ceiling,
// 1 against the ground.
type Gate struct {
	X            float64
	Width        float64
	HoleHeight   float64
	HolePosition float64
	Passed       bool
}

func (*Gate) isEntity() {}

// PowerKind identifies a power-up.
type PowerKind int

const (
	PowerGhost PowerKind = iota
	PowerClone
	powerKinds
)

func (k PowerKind) String() string {
	if k == PowerClone {
		return "clone"
	}
	return "ghost"
}

// Pickup grants a power-up when the player touches it.
type Pickup struct {
	X     float64
	Lane  Lane
	Kind  PowerKind
	Taken bool
}

// entitySpan returns the horizontal extent of an entity.
func (g *Game) entitySpan(e Entity) (x, w float64) {
	switch e := e.(type) {
	case *Obstacle:
		return e.X, g.cfg.Obstacles.Width
	case *Gate:
		return e.X, e.Width
	default:
		panic("gravity: unknown entity type")
	}
}

// obstacleBox returns the obstacle hit-box in canvas coordinates.
func (g *Game) obstacleBox(o *Obstacle) core.RectF {
	w, h := g.cfg.Obstacles.Width, g.cfg.Obstacles.Height
	if o.Lane == LaneTop {
		return core.NewRectF(o.X, g.cfg.Canvas.CeilingY, w, h)
	}
	return core.NewRectF(o.X, g.cfg.Canvas.GroundY-h, w, h)
}

// holeSpan returns the top and bottom of a gate's passable hole.
func (g *Game) holeSpan(gt *Gate) (top, bottom float64) {
	ceiling, ground := g.cfg.Canvas.CeilingY, g.cfg.Canvas.GroundY
	top = ceiling + gt.HolePosition*(ground-ceiling-gt.HoleHeight)
	return top, top + gt.HoleHeight
}

// pickupBox returns the pickup square, centered on its lane's player slot.
func (g *Game) pickupBox(p *Pickup) core.RectF {
	size := g.cfg.PowerUps.Size
	slot := g.laneTop(p.Lane)
	return core.NewRectF(p.X, slot+(g.cfg.Player.Height-size)/2, size, size)
}

// laneTop returns the player's top edge when resting on lane l.
func (g *Game) laneTop(l Lane) float64 {
	if l == LaneTop {
		return g.cfg.Canvas.CeilingY
	}
	return g.cfg.Canvas.GroundY - g.cfg.Player.Height
}
