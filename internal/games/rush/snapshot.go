package rush

import "math"

// Snapshot contains the complete game state for replays and determinism tests.
// Positions are stored in hundredths of a pixel so the snapshot only holds integers.
type Snapshot struct {
	Seed           int64
	Tick           int
	Mode           int
	Paused         bool
	Score          int
	Lives          int
	Victory        bool
	Tinted         bool
	PoopSpawnCount int
	SpawnTimerMS   int64 // elapsed time toward the next timed bonus
	PlayerX        int
	Scroll         int

	// Active entity counts per kind
	Counts [3]int

	// Each active entity is 4 ints: Kind, X, Y, VY
	EntityData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:           g.seed,
		Tick:           g.tick,
		Mode:           int(g.mode),
		Paused:         g.paused,
		Score:          g.run.score,
		Lives:          g.run.lives,
		Victory:        g.run.victory,
		Tinted:         g.run.tinted,
		PoopSpawnCount: g.run.poopSpawnCount,
		SpawnTimerMS:   g.run.elapsedSpawnTimer().Milliseconds(),
		PlayerX:        fixed(g.player.X),
		Scroll:         fixed(g.scroll),
	}

	for k, pool := range g.pools {
		for _, e := range pool.Active() {
			snap.Counts[k]++
			snap.EntityData = append(snap.EntityData, int(e.Kind), fixed(e.X), fixed(e.Y), fixed(e.VY))
		}
	}
	return snap
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Seed)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tick)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PoopSpawnCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimerMS)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Scroll)         //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Victory)
	h = h*31 + boolBit(snap.Tinted)

	for _, c := range snap.Counts {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
