package rush

import "github.com/vovakirdan/carrot-rush/internal/core"

// Kind identifies one of the three falling entity collections.
type Kind int

const (
	KindObstacle    Kind = iota // poop: costs a life or ends the run
	KindCollectible             // carrot: awards points
	KindBonus                   // cookie: awards a life
	kindCount
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Entity is one falling object. X and Y name its center in field coordinates.
type Entity struct {
	Kind   Kind
	X, Y   float64
	VY     float64 // fall speed in px/s
	Size   float64
	Active bool
}

// Rect returns the collision box of the entity.
func (e Entity) Rect() core.Rect {
	return core.CenteredRect(e.X, e.Y, e.Size, e.Size)
}

// Pool owns the entities of one kind. Slots are reused, and the number of
// active entities can never exceed the cap: Spawn refuses instead.
type Pool struct {
	kind  Kind
	cap   int
	slots []Entity
}

// NewPool creates an empty pool with the given cap.
func NewPool(kind Kind, capacity int) *Pool {
	return &Pool{
		kind:  kind,
		cap:   max(capacity, 0),
		slots: make([]Entity, 0, max(capacity, 0)),
	}
}

// Kind returns the kind of entity held by the pool.
func (p *Pool) Kind() Kind { return p.kind }

// Cap returns the maximum number of concurrently active entities.
func (p *Pool) Cap() int { return p.cap }

// CountActive returns the number of active entities.
func (p *Pool) CountActive() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Spawn activates a new entity and returns its slot.
// At cap the attempt is dropped and ok is false.
func (p *Pool) Spawn(x, y, vy, size float64) (slot int, ok bool) {
	if p.Full() {
		return -1, false
	}

	e := Entity{Kind: p.kind, X: x, Y: y, VY: vy, Size: size, Active: true}
	for i := range p.slots {
		if !p.slots[i].Active {
			p.slots[i] = e
			return i, true
		}
	}
	p.slots = append(p.slots, e)
	return len(p.slots) - 1, true
}

// Get returns the entity in a slot. Out-of-range slots yield an inactive entity.
func (p *Pool) Get(slot int) Entity {
	if slot < 0 || slot >= len(p.slots) {
		return Entity{Kind: p.kind}
	}
	return p.slots[slot]
}

// Deactivate removes an entity from play. Returns false if the slot was not active.
func (p *Pool) Deactivate(slot int) bool {
	if slot < 0 || slot >= len(p.slots) || !p.slots[slot].Active {
		return false
	}
	p.slots[slot].Active = false
	return true
}

// Active returns a copy of the active entities in slot order.
func (p *Pool) Active() []Entity {
	out := make([]Entity, 0, len(p.slots))
	for _, e := range p.slots {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Full reports whether a spawn would be refused.
func (p *Pool) Full() bool {
	return p.CountActive() >= p.cap
}

// each calls fn for every active entity with a pointer into the pool.
func (p *Pool) each(fn func(slot int, e *Entity)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(i, &p.slots[i])
		}
	}
}
