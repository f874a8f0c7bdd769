package world

import "context"

var down = Vector{Y: -1}

func NewPaintingObject(c Color, cfg PaintConfig) PaintingObject {
	return PaintingObject{
		Color:    c,
		Throttle: NewTimer(cfg.Interval(), TimerRepeating),
	}
}

// paintSurfaces stamps a mark under every painting entity whose throttle
// fired this tick. A mark of another color under the painter is replaced.
func (s *Simulation) paintSurfaces() {
	w := s.World
	cfg := s.Config.Paint

	for _, e := range w.Painters.Entities() {
		painter, _ := w.Painters.Get(e)
		painter.Throttle.Tick(s.dt)
		w.Painters.Set(e, painter)

		if !painter.Throttle.JustFinished() || w.PendingDespawn(e) || s.rays == nil {
			continue
		}
		at, ok := w.GlobalTransform(e)
		if !ok {
			continue
		}

		origin := at.Position.Add(Vector{Y: cfg.RayLift})
		hit, ok := s.rays.CastRay(w, origin, down, cfg.RayLength, s.paintable)
		if !ok {
			continue
		}
		if old, ok := w.Paints.Get(hit.Entity); ok && old.Color != painter.Color {
			w.MarkDespawn(hit.Entity)
		}
		s.spawnPaint(hit.Point.X, hit.Point.Z, painter.Color)
	}
}

func (s *Simulation) paintable(e Entity) bool {
	return s.World.Surfaces.Has(e) || s.World.Paints.Has(e)
}

func (s *Simulation) spawnPaint(x, z float32, c Color) Entity {
	w := s.World
	e := w.Spawn()
	w.Paints.Set(e, Paint{Color: c})
	w.Transforms.Set(e, NewTransform(x, s.Config.Paint.Height, z))
	w.Colliders.Set(e, DiscCollider(s.Config.Paint.Radius))
	s.metrics.marks.Add(context.Background(), 1, teamAttr(c))
	return e
}
