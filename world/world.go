package world

type remover interface {
	Remove(Entity)
}

// World is the entity arena. Component data lives in one Store per type and
// parent/child links are explicit.
type World struct {
	nextID   Entity
	alive    map[Entity]struct{}
	children map[Entity][]Entity
	stores   []remover

	Transforms  *Store[Transform]
	Velocities  *Store[Velocity]
	Colliders   *Store[Collider]
	Parents     *Store[Entity]
	Tanks       *Store[Tank]
	Teams       *Store[Color]
	Healths     *Store[Health]
	Turrets     *Store[Turret]
	Muzzles     *Store[Muzzle]
	Bullets     *Store[Bullet]
	Painters    *Store[PaintingObject]
	Paints      *Store[Paint]
	Surfaces    *Store[PaintableSurface]
	SpawnPoints *Store[SpawnPoint]
	pending     *Store[pendingDespawn]
}

func NewWorld() *World {
	w := &World{
		nextID:   1,
		alive:    make(map[Entity]struct{}),
		children: make(map[Entity][]Entity),
	}
	w.Transforms = register(w, NewStore[Transform]())
	w.Velocities = register(w, NewStore[Velocity]())
	w.Colliders = register(w, NewStore[Collider]())
	w.Parents = register(w, NewStore[Entity]())
	w.Tanks = register(w, NewStore[Tank]())
	w.Teams = register(w, NewStore[Color]())
	w.Healths = register(w, NewStore[Health]())
	w.Turrets = register(w, NewStore[Turret]())
	w.Muzzles = register(w, NewStore[Muzzle]())
	w.Bullets = register(w, NewStore[Bullet]())
	w.Painters = register(w, NewStore[PaintingObject]())
	w.Paints = register(w, NewStore[Paint]())
	w.Surfaces = register(w, NewStore[PaintableSurface]())
	w.SpawnPoints = register(w, NewStore[SpawnPoint]())
	w.pending = register(w, NewStore[pendingDespawn]())
	return w
}

func register[T any](w *World, s *Store[T]) *Store[T] {
	w.stores = append(w.stores, s)
	return s
}

func (w *World) Spawn() Entity {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

func (w *World) Len() int {
	return len(w.alive)
}

func (w *World) SetParent(child, parent Entity) {
	if !w.Alive(child) || !w.Alive(parent) {
		return
	}
	w.Parents.Set(child, parent)
	w.children[parent] = append(w.children[parent], child)
}

func (w *World) Children(e Entity) []Entity {
	return append([]Entity(nil), w.children[e]...)
}

// ChildWith returns the first child of e present in s.
func ChildWith[T any](w *World, e Entity, s *Store[T]) (Entity, bool) {
	for _, child := range w.children[e] {
		if s.Has(child) {
			return child, true
		}
	}
	return NilEntity, false
}

// GlobalTransform composes e's transform with every ancestor's.
func (w *World) GlobalTransform(e Entity) (Transform, bool) {
	t, ok := w.Transforms.Get(e)
	if !ok {
		return Transform{}, false
	}
	for parent, ok := w.Parents.Get(e); ok; parent, ok = w.Parents.Get(parent) {
		pt, ok := w.Transforms.Get(parent)
		if !ok {
			break
		}
		t = pt.Mul(t)
	}
	return t, true
}

// remove deletes e, its descendants and all their components right away.
// Systems go through MarkDespawn instead.
func (w *World) remove(e Entity) {
	if !w.Alive(e) {
		return
	}
	for _, child := range w.Children(e) {
		w.remove(child)
	}
	delete(w.children, e)
	if parent, ok := w.Parents.Get(e); ok {
		siblings := w.children[parent]
		for i, s := range siblings {
			if s == e {
				w.children[parent] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	delete(w.alive, e)
}
