package world

// MarkDespawn schedules e for removal at the end of the current tick.
// Marking twice, or marking an entity that is already gone, does nothing.
func (w *World) MarkDespawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.pending.Set(e, pendingDespawn{})
}

func (w *World) PendingDespawn(e Entity) bool {
	return w.pending.Has(e)
}

// Sweep removes every marked entity and its children. It returns the number
// of marked entities removed.
func (w *World) Sweep() int {
	marked := w.pending.Entities()
	for _, e := range marked {
		w.remove(e)
	}
	w.pending.Clear()
	return len(marked)
}

func (s *Simulation) despawnEntities() {
	if n := s.World.Sweep(); n > 0 {
		s.log.Debug("despawned", zapTick(s.tick), zapCount(n))
	}
}
