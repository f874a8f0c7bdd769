package world

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Physics advances bodies by dt and reports colliders that started touching.
type Physics interface {
	Step(w *World, dt time.Duration, report func(CollisionStart))
}

type RayHit struct {
	Entity   Entity
	Point    Vector
	Distance float32
}

// RayCaster answers spatial queries. Only entities accepted by filter count.
type RayCaster interface {
	CastRay(w *World, origin, dir Vector, maxDist float32, filter func(Entity) bool) (RayHit, bool)
}

type system struct {
	name string
	run  func()
}

// Simulation is the context every system runs in. It is created at match
// start and owned by one goroutine.
type Simulation struct {
	World    *World
	Config   Config
	Assets   *Assets
	Assigner Assigner

	Movements  *Queue[Movement]
	Aims       *Queue[TurretAim]
	Fires      *Queue[Fire]
	Spawns     *Queue[SpawnTank]
	Collisions *Queue[CollisionStart]
	Outcomes   *Queue[Outcome]

	physics Physics
	rays    RayCaster
	log     *zap.Logger
	meter   metric.Meter
	metrics *metrics

	systems []system
	tick    int64
	dt      time.Duration
	slots   int
}

type Option func(*Simulation)

func WithLogger(log *zap.Logger) Option {
	return func(s *Simulation) { s.log = log }
}

func WithAssets(a *Assets) Option {
	return func(s *Simulation) { s.Assets = a }
}

func WithAssigner(a Assigner) Option {
	return func(s *Simulation) { s.Assigner = a }
}

// WithPhysics also installs p as the ray caster when it implements one.
func WithPhysics(p Physics) Option {
	return func(s *Simulation) {
		s.physics = p
		if rc, ok := p.(RayCaster); ok && s.rays == nil {
			s.rays = rc
		}
	}
}

func WithRayCaster(rc RayCaster) Option {
	return func(s *Simulation) { s.rays = rc }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Simulation) { s.meter = m }
}

func NewSimulation(cfg Config, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		World:      NewWorld(),
		Config:     cfg,
		Movements:  NewQueue[Movement](),
		Aims:       NewQueue[TurretAim](),
		Fires:      NewQueue[Fire](),
		Spawns:     NewQueue[SpawnTank](),
		Collisions: NewQueue[CollisionStart](),
		Outcomes:   NewQueue[Outcome](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.Assets == nil {
		s.Assets = AllAssets()
	}
	if s.Assigner == nil {
		s.Assigner = DefaultAssigner()
	}

	m, err := newMetrics(s.meter)
	if err != nil {
		return nil, err
	}
	s.metrics = m

	// Command consumers run after the producers that fed the queues, and
	// the despawn sweep always runs last.
	s.systems = []system{
		{"spawn", s.spawnTanks},
		{"movement", s.moveTanks},
		{"turret", s.aimTurrets},
		{"fire", s.fireBullets},
		{"physics", s.stepPhysics},
		{"impact", s.applyImpacts},
		{"bullet_ttl", s.ageBullets},
		{"paint", s.paintSurfaces},
		{"vacate", s.releaseSpawnPoints},
		{"despawn", s.despawnEntities},
	}
	return s, nil
}

func (s *Simulation) CurrentTick() int64 {
	return s.tick
}

// Move, Aim, FireAt, Spawn and ReportCollision enqueue external input.

func (s *Simulation) Move(tank Entity, axis Axis, magnitude float32) {
	s.Movements.Send(Movement{Tank: tank, Axis: axis, Magnitude: magnitude})
}

func (s *Simulation) Aim(tank Entity, x, z float32) {
	s.Aims.Send(TurretAim{Tank: tank, X: x, Z: z})
}

func (s *Simulation) FireAt(tank Entity) {
	s.Fires.Send(Fire{Tank: tank})
}

func (s *Simulation) Spawn(req SpawnTank) {
	s.Spawns.Send(req)
}

func (s *Simulation) ReportCollision(a, b Entity) {
	s.Collisions.Send(CollisionStart{A: a, B: b})
}

// Tick runs every system once, in order, then ages the command queues.
func (s *Simulation) Tick(dt time.Duration) {
	s.dt = dt
	for _, sys := range s.systems {
		sys.run()
	}

	s.Movements.Swap()
	s.Aims.Swap()
	s.Fires.Swap()
	s.Spawns.Swap()
	s.Collisions.Swap()
	s.Outcomes.Swap()
	s.tick++
}

func (s *Simulation) deltaSeconds() float32 {
	return float32(s.dt.Seconds())
}

func (s *Simulation) stepPhysics() {
	if s.physics == nil {
		return
	}
	s.physics.Step(s.World, s.dt, s.Collisions.Send)
}

// reject records a dropped command. None of these stop the simulation.
// Commands aimed at vanished entities are routine and stay out of Outcomes.
func (s *Simulation) reject(cmd Command, tank Entity, err error) {
	s.metrics.drop(cmd, err)
	if !errors.Is(err, ErrEntityNotFound) {
		s.Outcomes.Send(Outcome{Tick: s.tick, Command: cmd, Tank: tank, Err: err})
	}
	s.log.Debug("command dropped",
		zap.Int64("tick", s.tick),
		zap.Stringer("command", cmd),
		zap.Uint64("tank", uint64(tank)),
		zap.Error(err),
	)
}
