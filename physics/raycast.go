package physics

import (
	"math"

	"painttanks/world"
)

// CastRay returns the nearest accepted collider along the ray, sensors
// included. Equal distances go to the most recently created entity, which is
// the one drawn on top.
func (e *Engine) CastRay(w *world.World, origin, dir world.Vector, maxDist float32, filter func(world.Entity) bool) (world.RayHit, bool) {
	dir = dir.Normalize()
	if dir == (world.Vector{}) || maxDist <= 0 {
		return world.RayHit{}, false
	}

	var (
		best  world.RayHit
		found bool
	)
	w.Colliders.ForEach(func(id world.Entity, c world.Collider) {
		if filter != nil && !filter(id) {
			return
		}
		at, ok := w.GlobalTransform(id)
		if !ok {
			return
		}
		t, ok := intersect(origin, dir, at, c)
		if !ok || t > maxDist {
			return
		}
		if !found || t < best.Distance || (t == best.Distance && id > best.Entity) {
			best = world.RayHit{Entity: id, Point: origin.Add(dir.Scale(t)), Distance: t}
			found = true
		}
	})
	return best, found
}

func intersect(origin, dir world.Vector, at world.Transform, c world.Collider) (float32, bool) {
	switch c.Shape {
	case world.ShapeBox:
		return rayBox(origin, dir, at, c.Half)
	case world.ShapeSphere:
		return raySphere(origin, dir, at.Position, c.Radius)
	case world.ShapeDisc:
		return rayDisc(origin, dir, at.Position, c.Radius)
	}
	return 0, false
}

// rayBox is the slab test in the box's own frame.
func rayBox(origin, dir world.Vector, at world.Transform, half world.Vector) (float32, bool) {
	o := origin.Sub(at.Position).RotateY(-at.Yaw)
	d := dir.RotateY(-at.Yaw)

	tmin, tmax := float32(0), float32(math.MaxFloat32)
	for _, axis := range [3][3]float32{
		{o.X, d.X, half.X},
		{o.Y, d.Y, half.Y},
		{o.Z, d.Z, half.Z},
	} {
		p, v, h := axis[0], axis[1], axis[2]
		if v == 0 {
			if p < -h || p > h {
				return 0, false
			}
			continue
		}
		t1, t2 := (-h-p)/v, (h-p)/v
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

func raySphere(origin, dir, center world.Vector, radius float32) (float32, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// rayDisc treats the disc as a horizontal circle at center.Y.
func rayDisc(origin, dir, center world.Vector, radius float32) (float32, bool) {
	if dir.Y == 0 {
		return 0, false
	}
	t := (center.Y - origin.Y) / dir.Y
	if t < 0 {
		return 0, false
	}
	hit := origin.Add(dir.Scale(t))
	d := hit.Sub(center).XZ()
	if d.Dot(d) > radius*radius {
		return 0, false
	}
	return t, true
}
