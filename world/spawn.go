package world

import (
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// spawnTanks claims one free spawn point per request and builds the tank on
// it. Requests that cannot be served are dropped with an Outcome.
func (s *Simulation) spawnTanks() {
	for _, req := range s.Spawns.Drain() {
		tank, err := s.spawnTank(req)
		if err != nil {
			s.reject(CommandSpawnTank, NilEntity, err)
			continue
		}
		s.Outcomes.Send(Outcome{Tick: s.tick, Command: CommandSpawnTank, Tank: tank})
	}
}

func (s *Simulation) spawnTank(req SpawnTank) (Entity, error) {
	w := s.World
	point, ok := s.freeSpawnPoint()
	if !ok {
		return NilEntity, ErrCapacityExhausted
	}
	if !s.Assets.Loaded(req.Body.Asset()) || !s.Assets.Loaded(req.Turret.Asset()) {
		return NilEntity, ErrResourceUnavailable
	}

	player, team := s.Assigner.Assign(s.slots, req)
	s.slots++

	at, _ := w.GlobalTransform(point)
	tank := req.Body.build(w, at)
	w.Tanks.Set(tank, Tank{
		Player:     player,
		Name:       ksuid.New().String(),
		Body:       req.Body,
		SpawnPoint: point,
	})
	w.Teams.Set(tank, team)
	w.Healths.Set(tank, MaxHealth)

	turret := req.Turret.build(w, tank)
	w.Teams.Set(turret, team)

	w.SpawnPoints.Set(point, SpawnPoint{Active: true, Occupant: tank})

	s.log.Info("tank spawned",
		zapTick(s.tick),
		zapEntity("tank", tank),
		zapEntity("spawn_point", point),
		zap.Stringer("player", player),
		zap.String("team", team.Hex()),
		zap.Stringer("body", req.Body),
		zap.Stringer("turret", req.Turret),
	)
	return tank, nil
}

// freeSpawnPoint picks the first inactive point in map order.
func (s *Simulation) freeSpawnPoint() (Entity, bool) {
	for _, e := range s.World.SpawnPoints.Entities() {
		if p, _ := s.World.SpawnPoints.Get(e); !p.Active {
			return e, true
		}
	}
	return NilEntity, false
}

// releaseSpawnPoints frees the point under every tank leaving this tick.
func (s *Simulation) releaseSpawnPoints() {
	w := s.World
	for _, e := range w.Tanks.Entities() {
		if !w.PendingDespawn(e) {
			continue
		}
		tank, _ := w.Tanks.Get(e)
		if p, ok := w.SpawnPoints.Get(tank.SpawnPoint); ok && p.Occupant == e {
			w.SpawnPoints.Set(tank.SpawnPoint, SpawnPoint{})
		}
	}
}

// AddSpawnPoint registers a spawn location. Order of registration is the
// order in which points are handed out.
func (w *World) AddSpawnPoint(at Transform) Entity {
	e := w.Spawn()
	w.Transforms.Set(e, at)
	w.SpawnPoints.Set(e, SpawnPoint{})
	return e
}
