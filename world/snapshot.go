package world

import "google.golang.org/protobuf/types/known/structpb"

type TankView struct {
	ID        Entity
	Name      string
	Player    PlayerKind
	Team      Color
	Health    Health
	Transform Transform
	Turret    Transform
	Velocity  Velocity
}

type BulletView struct {
	ID        Entity
	Owner     Entity
	Team      Color
	Damage    uint8
	Transform Transform
}

type PaintView struct {
	ID       Entity
	Color    Color
	Position Vector
}

type SpawnPointView struct {
	ID       Entity
	Active   bool
	Position Vector
}

// Snapshot is a read-only copy of what renderers and UIs may show.
type Snapshot struct {
	Tick        int64
	Tanks       []TankView
	Bullets     []BulletView
	Paints      []PaintView
	SpawnPoints []SpawnPointView
}

func (s *Simulation) Snapshot() *Snapshot {
	w := s.World
	snap := &Snapshot{
		Tick:        s.tick,
		Tanks:       make([]TankView, 0, w.Tanks.Len()),
		Bullets:     make([]BulletView, 0, w.Bullets.Len()),
		Paints:      make([]PaintView, 0, w.Paints.Len()),
		SpawnPoints: make([]SpawnPointView, 0, w.SpawnPoints.Len()),
	}

	w.Tanks.ForEach(func(e Entity, tank Tank) {
		view := TankView{ID: e, Name: tank.Name, Player: tank.Player}
		view.Team, _ = w.Teams.Get(e)
		view.Health, _ = w.Healths.Get(e)
		view.Transform, _ = w.Transforms.Get(e)
		view.Velocity, _ = w.Velocities.Get(e)
		if turret, ok := ChildWith(w, e, w.Turrets); ok {
			view.Turret, _ = w.GlobalTransform(turret)
		}
		snap.Tanks = append(snap.Tanks, view)
	})
	w.Bullets.ForEach(func(e Entity, b Bullet) {
		view := BulletView{ID: e, Owner: b.Owner, Damage: b.Damage}
		view.Team, _ = w.Teams.Get(e)
		view.Transform, _ = w.Transforms.Get(e)
		snap.Bullets = append(snap.Bullets, view)
	})
	w.Paints.ForEach(func(e Entity, p Paint) {
		t, _ := w.Transforms.Get(e)
		snap.Paints = append(snap.Paints, PaintView{ID: e, Color: p.Color, Position: t.Position})
	})
	w.SpawnPoints.ForEach(func(e Entity, p SpawnPoint) {
		t, _ := w.GlobalTransform(e)
		snap.SpawnPoints = append(snap.SpawnPoints, SpawnPointView{ID: e, Active: p.Active, Position: t.Position})
	})
	return snap
}

func (v Vector) toValue() map[string]interface{} {
	return map[string]interface{}{"x": v.X, "y": v.Y, "z": v.Z}
}

func (t Transform) toValue() map[string]interface{} {
	return map[string]interface{}{"position": t.Position.toValue(), "yaw": t.Yaw}
}

func (s *Snapshot) ToProto() (*structpb.Struct, error) {
	tanks := make([]interface{}, 0, len(s.Tanks))
	for _, t := range s.Tanks {
		tanks = append(tanks, map[string]interface{}{
			"id":        uint64(t.ID),
			"name":      t.Name,
			"player":    t.Player.String(),
			"team":      t.Team.Hex(),
			"health":    uint32(t.Health),
			"transform": t.Transform.toValue(),
			"turret":    t.Turret.toValue(),
		})
	}
	bullets := make([]interface{}, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		bullets = append(bullets, map[string]interface{}{
			"id":        uint64(b.ID),
			"owner":     uint64(b.Owner),
			"team":      b.Team.Hex(),
			"damage":    uint32(b.Damage),
			"transform": b.Transform.toValue(),
		})
	}
	paints := make([]interface{}, 0, len(s.Paints))
	for _, p := range s.Paints {
		paints = append(paints, map[string]interface{}{
			"id":       uint64(p.ID),
			"color":    p.Color.Hex(),
			"position": p.Position.toValue(),
		})
	}
	points := make([]interface{}, 0, len(s.SpawnPoints))
	for _, p := range s.SpawnPoints {
		points = append(points, map[string]interface{}{
			"id":       uint64(p.ID),
			"active":   p.Active,
			"position": p.Position.toValue(),
		})
	}

	return structpb.NewStruct(map[string]interface{}{
		"tick":        s.Tick,
		"tanks":       tanks,
		"bullets":     bullets,
		"paints":      paints,
		"spawnPoints": points,
	})
}
