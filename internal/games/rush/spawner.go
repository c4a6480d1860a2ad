package rush

import "github.com/vovakirdan/carrot-rush/internal/config"

func (g *Game) spawnConfig(k Kind) config.SpawnConfig {
	switch k {
	case KindCollectible:
		return g.cfg.Collectibles
	case KindBonus:
		return g.cfg.Bonuses
	default:
		return g.cfg.Obstacles
	}
}

// spawn runs the per-tick spawn trials. A trial whose pool is full is dropped.
func (g *Game) spawn() {
	obstacles := g.cfg.Obstacles
	chance := g.difficulty.Chance(obstacles.Chance, g.run.score, g.tick)
	if g.rng.Float64() < chance && g.spawnEntity(KindObstacle) {
		g.run.poopSpawnCount++

		collectibles := g.cfg.Collectibles
		if collectibles.Policy == config.PolicyPaired && g.run.poopSpawnCount%collectibles.Every == 0 {
			g.spawnEntity(KindCollectible)
		}
	}

	if g.cfg.Bonuses.Policy == config.PolicyChance && g.rng.Float64() < g.cfg.Bonuses.Chance {
		g.spawnEntity(KindBonus)
	}
}

// spawnTimedBonus is the callback of the bonus timer.
func (g *Game) spawnTimedBonus() {
	if g.mode != ModePlaying {
		return
	}
	g.spawnEntity(KindBonus)
}

// spawnEntity places one entity of kind k above the field at a random x.
func (g *Game) spawnEntity(k Kind) bool {
	pool := g.pools[k]
	if pool.Full() {
		return false
	}

	sc := g.spawnConfig(k)
	x := g.randomX()
	vy := g.difficulty.Speed(sc.Speed, g.run.score, g.tick)
	if sc.SpeedJit > 0 {
		vy += (g.rng.Float64()*2 - 1) * sc.SpeedJit
	}

	_, ok := pool.Spawn(x, g.cfg.Field.SpawnY, vy, sc.Size)
	return ok
}

// seedInitial places the initial set of a kind in a row above the field.
// It draws nothing from the RNG so every run starts from the same layout.
func (g *Game) seedInitial(k Kind) {
	sc := g.spawnConfig(k)
	for i := range sc.Initial {
		g.pools[k].Spawn(sc.InitialX+float64(i)*sc.InitialDX, g.cfg.Field.SpawnY, sc.Speed, sc.Size)
	}
}

// randomX returns a whole-pixel x in [SpawnMinX, SpawnMaxX].
func (g *Game) randomX() float64 {
	f := g.cfg.Field
	span := int(f.SpawnMaxX - f.SpawnMinX)
	if span <= 0 {
		return f.SpawnMinX
	}
	return f.SpawnMinX + float64(g.rng.Intn(span+1))
}
