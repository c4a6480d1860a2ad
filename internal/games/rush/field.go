package rush

import (
	"time"

	"github.com/vovakirdan/carrot-rush/internal/config"
	"github.com/vovakirdan/carrot-rush/internal/core"
)

// player is the rabbit at the bottom of the field. Y never changes.
type player struct {
	X, Y float64
	VX   float64
}

func (p player) rect(cfg config.PlayerConfig) core.Rect {
	return core.CenteredRect(p.X, p.Y, cfg.Width, cfg.Height)
}

// restartButton is the clickable area of the restart control, centered on the field.
func restartButton(f config.FieldConfig) core.Rect {
	return core.CenteredRect(f.Width/2, f.Height/2, 200, 50)
}

// movePlayer applies the held direction and keeps the player inside the field.
// Keys win over a held pointer.
func (g *Game) movePlayer(d time.Duration) {
	dir := g.keyDir
	if dir == 0 {
		dir = g.pointerDir
	}
	g.player.VX = float64(dir) * g.cfg.Player.Speed

	half := g.cfg.Player.Width / 2
	g.player.X = core.Clamp(g.player.X+g.player.VX*d.Seconds(), half, g.cfg.Field.Width-half)
}

func (g *Game) moveEntities(d time.Duration) {
	dt := d.Seconds()
	for _, pool := range g.pools {
		pool.each(func(_ int, e *Entity) {
			e.Y += e.VY * dt
		})
	}
}

// sweepOffscreen recycles or destroys entities below the bottom bound,
// following each kind's off-screen policy.
func (g *Game) sweepOffscreen() {
	f := g.cfg.Field
	for k, pool := range g.pools {
		recycle := g.spawnConfig(Kind(k)).Offscreen == config.OffscreenRecycle
		pool.each(func(_ int, e *Entity) {
			if e.Y <= f.BottomBound {
				return
			}
			if recycle {
				e.Y = f.SpawnY
				e.X = g.randomX()
			} else {
				e.Active = false
			}
		})
	}
}

// contacts lists the entities touching the player, rewards before obstacles.
func (g *Game) contacts() []Event {
	pr := g.player.rect(g.cfg.Player)

	var events []Event
	for _, k := range []Kind{KindCollectible, KindBonus} {
		g.pools[k].each(func(slot int, e *Entity) {
			if e.Rect().Intersects(pr) {
				events = append(events, OverlapEvent{Kind: k, Slot: slot})
			}
		})
	}
	g.pools[KindObstacle].each(func(slot int, e *Entity) {
		if e.Rect().Intersects(pr) {
			events = append(events, CollideEvent{Slot: slot})
		}
	})
	return events
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
