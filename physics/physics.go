// Package physics is a small stand-in for a rigid body engine. It integrates
// velocities, reports colliders that begin to overlap and answers ray casts.
// It never resolves contacts: bodies with friction are taken to rest on the
// ground and only frictionless ones fall.
package physics

import (
	"math"
	"time"

	"painttanks/world"
)

type Config struct {
	Gravity        float32 `toml:"gravity"`
	LinearDamping  float32 `toml:"linear_damping"`
	AngularDamping float32 `toml:"angular_damping"`
}

func DefaultConfig() Config {
	return Config{
		Gravity:        9.81,
		LinearDamping:  2,
		AngularDamping: 8,
	}
}

type pair struct {
	a, b world.Entity
}

func makePair(a, b world.Entity) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

type Engine struct {
	cfg      Config
	contacts map[pair]struct{}
}

func New(cfg Config) *Engine {
	return &Engine{
		cfg:      cfg,
		contacts: make(map[pair]struct{}),
	}
}

var (
	_ world.Physics   = (*Engine)(nil)
	_ world.RayCaster = (*Engine)(nil)
)

func (e *Engine) Step(w *world.World, dt time.Duration, report func(world.CollisionStart)) {
	e.integrate(w, float32(dt.Seconds()))
	e.detect(w, report)
}

// integrate moves root bodies. Children follow through their parent's
// transform. Bodies with friction lose speed as if dragged along the ground;
// dynamic bodies without it are in flight.
func (e *Engine) integrate(w *world.World, dt float32) {
	for _, id := range w.Velocities.Entities() {
		if w.Parents.Has(id) {
			continue
		}
		collider, hasCollider := w.Colliders.Get(id)
		if hasCollider && collider.Body == world.BodyStatic {
			continue
		}
		t, ok := w.Transforms.Get(id)
		if !ok {
			continue
		}
		v, _ := w.Velocities.Get(id)
		if hasCollider && collider.Body == world.BodyDynamic && collider.Friction == 0 {
			v.Linear.Y -= e.cfg.Gravity * dt
			w.Velocities.Set(id, v)
		}

		t.Position = t.Position.Add(v.Linear.Scale(dt))
		t.RotateY(v.Angular * dt)
		w.Transforms.Set(id, t)

		if hasCollider && collider.Friction > 0 {
			v.Linear = v.Linear.Scale(1 / (1 + dt*e.cfg.LinearDamping))
			v.Angular *= 1 / (1 + dt*e.cfg.AngularDamping)
			w.Velocities.Set(id, v)
		}
	}
}

type body struct {
	id       world.Entity
	at       world.Transform
	collider world.Collider
}

func solidBodies(w *world.World) []body {
	bodies := make([]body, 0, w.Colliders.Len())
	w.Colliders.ForEach(func(id world.Entity, c world.Collider) {
		if c.Sensor {
			return
		}
		at, ok := w.GlobalTransform(id)
		if !ok {
			return
		}
		bodies = append(bodies, body{id: id, at: at, collider: c})
	})
	return bodies
}

// detect reports pairs that overlap now but did not on the previous step.
func (e *Engine) detect(w *world.World, report func(world.CollisionStart)) {
	bodies := solidBodies(w)
	current := make(map[pair]struct{}, len(e.contacts))

	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if a.collider.Body == world.BodyStatic && b.collider.Body == world.BodyStatic {
				continue
			}
			if !overlaps(a, b) {
				continue
			}
			p := makePair(a.id, b.id)
			current[p] = struct{}{}
			if _, ok := e.contacts[p]; !ok {
				report(world.CollisionStart{A: a.id, B: b.id})
			}
		}
	}
	e.contacts = current
}

func overlaps(a, b body) bool {
	switch {
	case a.collider.Shape == world.ShapeSphere && b.collider.Shape == world.ShapeSphere:
		r := a.collider.Radius + b.collider.Radius
		d := a.at.Position.Sub(b.at.Position)
		return d.Dot(d) <= r*r
	case a.collider.Shape == world.ShapeSphere && b.collider.Shape == world.ShapeBox:
		return sphereBox(a, b)
	case a.collider.Shape == world.ShapeBox && b.collider.Shape == world.ShapeSphere:
		return sphereBox(b, a)
	case a.collider.Shape == world.ShapeBox && b.collider.Shape == world.ShapeBox:
		return boxBox(a, b)
	}
	return false
}

func sphereBox(sphere, box body) bool {
	local := sphere.at.Position.Sub(box.at.Position).RotateY(-box.at.Yaw)
	h := box.collider.Half
	closest := world.Vector{
		X: clamp(local.X, -h.X, h.X),
		Y: clamp(local.Y, -h.Y, h.Y),
		Z: clamp(local.Z, -h.Z, h.Z),
	}
	d := local.Sub(closest)
	r := sphere.collider.Radius
	return d.Dot(d) <= r*r
}

// boxBox compares the axis-aligned bounds of both yawed boxes.
func boxBox(a, b body) bool {
	ea, eb := extents(a), extents(b)
	d := a.at.Position.Sub(b.at.Position)
	return abs(d.X) <= ea.X+eb.X && abs(d.Y) <= ea.Y+eb.Y && abs(d.Z) <= ea.Z+eb.Z
}

func extents(b body) world.Vector {
	sin, cos := math.Sincos(float64(b.at.Yaw))
	s, c := abs(float32(sin)), abs(float32(cos))
	h := b.collider.Half
	return world.Vector{
		X: c*h.X + s*h.Z,
		Y: h.Y,
		Z: s*h.X + c*h.Z,
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
