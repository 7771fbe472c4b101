package systems

import (
	"math/rand"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starfield/components"
	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/loop"
)

// Canvas is the pixel-addressable surface the trail draws into.
type Canvas interface {
	// Ready reports whether the surface is attached and drawable.
	Ready() bool
	// Resize sets the logical surface dimensions.
	Resize(width, height int32)
	// Clear erases the whole surface.
	Clear()
	// FillDiamond fills a four-point star of the given radius centred at (x, y).
	FillDiamond(x, y, radius, alpha float32)
	// Flush finishes the frame's drawing.
	Flush()
}

// Particle is a read-only copy of one live trail particle.
type Particle struct {
	X, Y   float32
	VX, VY float32
	Size   float32
	Alpha  float32 // spawn opacity; the drawn opacity is Life
	Life   float32
	Decay  float32
}

// TrailStats counts particle lifecycle events since the trail was created.
type TrailStats struct {
	Spawned uint64
	Expired uint64
	Evicted uint64
}

// TrailSystem spawns star particles at the pointer and decays them each frame.
type TrailSystem struct {
	cfg config.TrailConfig
	rng *rand.Rand

	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Spark]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Spark]

	// Spawn order of live entities, oldest first. May hold removed entities
	// until the next compaction.
	order []ecs.Entity
	dead  []ecs.Entity

	canvas  Canvas
	subs    []loop.Subscription
	nextSeq uint64
	closed  bool
	stats   TrailStats
}

// NewTrailSystem creates a trail with the given parameters.
func NewTrailSystem(cfg config.TrailConfig, rng *rand.Rand) *TrailSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	t := &TrailSystem{
		cfg:   cfg,
		rng:   rng,
		world: ecs.NewWorld(),
	}
	t.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Spark](t.world)
	t.filter = ecs.NewFilter3[components.Position, components.Velocity, components.Spark](t.world)
	return t
}

// Attach binds the drawing surface. A nil canvas leaves the trail unavailable.
func (t *TrailSystem) Attach(canvas Canvas) {
	if t.closed {
		return
	}
	t.canvas = canvas
}

// Start subscribes the trail to frame, pointer and resize events.
// Subscriptions are released by Close.
func (t *TrailSystem) Start(s *loop.Scheduler) {
	if t.closed || len(t.subs) > 0 {
		return
	}
	t.subs = append(t.subs,
		s.OnFrame(t.OnFrameTick),
		s.OnPointerMove(t.OnPointerMove),
		s.OnResize(t.OnResize),
	)
}

// available reports whether operations should run.
func (t *TrailSystem) available() bool {
	return !t.closed && t.canvas != nil && t.canvas.Ready()
}

// OnPointerMove spawns a batch of particles at (x, y).
func (t *TrailSystem) OnPointerMove(x, y float32) {
	if !t.available() {
		return
	}
	for i := 0; i < t.cfg.PerMove; i++ {
		if t.cfg.MaxParticles > 0 && t.Count() >= t.cfg.MaxParticles {
			t.evictOldest()
		}
		t.spawn(x, y)
	}
}

func (t *TrailSystem) spawn(x, y float32) {
	t.insert(Particle{
		X: x, Y: y,
		VX:    sample(t.rng, t.cfg.Velocity),
		VY:    sample(t.rng, t.cfg.Velocity),
		Size:  sample(t.rng, t.cfg.Size),
		Alpha: sample(t.rng, t.cfg.Alpha),
		Life:  1,
		Decay: sample(t.rng, t.cfg.Decay),
	})
}

func (t *TrailSystem) insert(p Particle) {
	pos := components.Position{X: p.X, Y: p.Y}
	vel := components.Velocity{X: p.VX, Y: p.VY}
	spark := components.Spark{
		Size:  p.Size,
		Alpha: p.Alpha,
		Life:  p.Life,
		Decay: p.Decay,
		Seq:   t.nextSeq,
	}
	t.nextSeq++

	e := t.mapper.NewEntity(&pos, &vel, &spark)
	t.order = append(t.order, e)
	t.stats.Spawned++
}

// Restore adds previously captured particles, oldest first. Particles with
// no remaining life are skipped; the cap applies as for spawning.
func (t *TrailSystem) Restore(particles []Particle) {
	if !t.available() {
		return
	}
	for _, p := range particles {
		if p.Life <= 0 {
			continue
		}
		if p.Life > 1 {
			p.Life = 1
		}
		if t.cfg.MaxParticles > 0 && t.Count() >= t.cfg.MaxParticles {
			t.evictOldest()
		}
		t.insert(p)
	}
}

// evictOldest removes the longest-lived particle still in the world.
func (t *TrailSystem) evictOldest() {
	for len(t.order) > 0 {
		e := t.order[0]
		t.order[0] = ecs.Entity{}
		t.order = t.order[1:]
		if t.world.Alive(e) {
			t.world.RemoveEntity(e)
			t.stats.Evicted++
			return
		}
	}
}

// OnFrameTick advances, culls and redraws every particle.
func (t *TrailSystem) OnFrameTick() {
	if !t.available() {
		return
	}

	t.canvas.Clear()

	t.dead = t.dead[:0]
	query := t.filter.Query()
	for query.Next() {
		pos, vel, spark := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y
		spark.Life -= spark.Decay

		if !spark.Alive() {
			t.dead = append(t.dead, query.Entity())
			continue
		}

		t.canvas.FillDiamond(pos.X, pos.Y, spark.Size, spark.Life)
	}

	// Structural changes must wait until the query has finished
	for _, e := range t.dead {
		t.world.RemoveEntity(e)
	}
	t.stats.Expired += uint64(len(t.dead))
	if len(t.dead) > 0 {
		t.compactOrder()
	}

	t.canvas.Flush()
}

// compactOrder drops removed entities from the spawn-order queue.
func (t *TrailSystem) compactOrder() {
	alive := 0
	for _, e := range t.order {
		if !t.world.Alive(e) {
			continue
		}
		t.order[alive] = e
		alive++
	}
	t.order = t.order[:alive]
}

// OnResize updates the surface dimensions. Live particles are kept.
func (t *TrailSystem) OnResize(width, height int32) {
	if !t.available() {
		return
	}
	t.canvas.Resize(width, height)
}

// Close stops the trail, releases its subscriptions and discards all particles.
// Safe to call more than once.
func (t *TrailSystem) Close() {
	if t.closed {
		return
	}
	t.closed = true

	for _, sub := range t.subs {
		sub.Cancel()
	}
	t.subs = nil

	t.dead = t.dead[:0]
	query := t.filter.Query()
	for query.Next() {
		t.dead = append(t.dead, query.Entity())
	}
	for _, e := range t.dead {
		t.world.RemoveEntity(e)
	}
	t.dead = nil
	t.order = nil
	t.canvas = nil
}

// Closed reports whether Close has been called.
func (t *TrailSystem) Closed() bool {
	return t.closed
}

// Count returns the number of live particles.
func (t *TrailSystem) Count() int {
	query := t.filter.Query()
	n := query.Count()
	query.Close()
	return n
}

// Stats returns lifecycle counters.
func (t *TrailSystem) Stats() TrailStats {
	return t.stats
}

// Snapshot returns copies of all live particles, oldest first.
func (t *TrailSystem) Snapshot() []Particle {
	type seqParticle struct {
		seq uint64
		p   Particle
	}
	var tmp []seqParticle

	query := t.filter.Query()
	for query.Next() {
		pos, vel, spark := query.Get()
		tmp = append(tmp, seqParticle{
			seq: spark.Seq,
			p: Particle{
				X: pos.X, Y: pos.Y,
				VX: vel.X, VY: vel.Y,
				Size:  spark.Size,
				Alpha: spark.Alpha,
				Life:  spark.Life,
				Decay: spark.Decay,
			},
		})
	}
	sort.Slice(tmp, func(i, j int) bool { return tmp[i].seq < tmp[j].seq })

	out := make([]Particle, len(tmp))
	for i := range tmp {
		out[i] = tmp[i].p
	}
	return out
}

// sample draws uniformly from [r.Min, r.Max).
func sample(rng *rand.Rand, r config.Range) float32 {
	return float32(r.Min + rng.Float64()*(r.Max-r.Min))
}
