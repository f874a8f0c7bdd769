package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func addPoints(s *Simulation, n int) []Entity {
	points := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, s.World.AddSpawnPoint(NewTransform(float32(i*4), 0.5, float32(i*4))))
	}
	return points
}

func TestSpawnFillsPointsInOrder(t *testing.T) {
	s, _ := newTestSim(t)
	points := addPoints(s, 2)

	for i := 0; i < 3; i++ {
		s.Spawn(SpawnTank{})
	}
	s.Tick(frame)

	require.Equal(t, 2, s.World.Tanks.Len())
	var (
		spawned []Entity
		errs    []error
	)
	for _, o := range s.Outcomes.Drain() {
		require.Equal(t, CommandSpawnTank, o.Command)
		if o.Err != nil {
			errs = append(errs, o.Err)
			continue
		}
		spawned = append(spawned, o.Tank)
	}
	require.Len(t, spawned, 2)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrCapacityExhausted)

	for i, tank := range spawned {
		p, _ := s.World.SpawnPoints.Get(points[i])
		require.True(t, p.Active)
		require.Equal(t, tank, p.Occupant)

		at, _ := s.World.Transforms.Get(tank)
		pointAt, _ := s.World.Transforms.Get(points[i])
		require.Equal(t, pointAt, at)

		h, _ := s.World.Healths.Get(tank)
		require.Equal(t, MaxHealth, h)

		turret, ok := ChildWith(s.World, tank, s.World.Turrets)
		require.True(t, ok)
		_, ok = ChildWith(s.World, turret, s.World.Muzzles)
		require.True(t, ok)
	}
}

func TestDefaultAssignment(t *testing.T) {
	s, _ := newTestSim(t)
	addPoints(s, 4)

	s.Spawn(SpawnTank{})
	s.Spawn(SpawnTank{})
	s.Spawn(SpawnTank{})
	s.Spawn(SpawnTank{Player: PlayerUser, Team: TeamRed})
	s.Tick(frame)

	want := []struct {
		player PlayerKind
		team   Color
	}{
		{PlayerUser, TeamBlue},
		{PlayerUser, TeamRed},
		{PlayerProgram, TeamNeutral},
		{PlayerUser, TeamRed},
	}
	tanks := s.World.Tanks.Entities()
	require.Len(t, tanks, len(want))
	for i, e := range tanks {
		tank, _ := s.World.Tanks.Get(e)
		team, _ := s.World.Teams.Get(e)
		require.Equal(t, want[i].player, tank.Player, "tank %d", i)
		require.Equal(t, want[i].team, team, "tank %d", i)
		require.NotEmpty(t, tank.Name)
	}
}

func TestCustomAssigner(t *testing.T) {
	var slots []int
	s, _ := newTestSim(t, WithAssigner(AssignerFunc(func(slot int, req SpawnTank) (PlayerKind, Color) {
		slots = append(slots, slot)
		return PlayerProgram, TeamRed
	})))
	addPoints(s, 2)

	s.Spawn(SpawnTank{})
	s.Spawn(SpawnTank{})
	s.Tick(frame)
	require.Equal(t, []int{0, 1}, slots)
}

func TestSpawnNeedsAssets(t *testing.T) {
	s, _ := newTestSim(t, WithAssets(NewAssets(BodyBasic.Asset())))
	points := addPoints(s, 1)

	s.Spawn(SpawnTank{})
	s.Tick(frame)

	require.Zero(t, s.World.Tanks.Len())
	errs := drainErrs(s)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrResourceUnavailable)
	p, _ := s.World.SpawnPoints.Get(points[0])
	require.False(t, p.Active)

	s.Assets.Load(TurretBasic.Asset())
	s.Spawn(SpawnTank{})
	s.Tick(frame)
	require.Equal(t, 1, s.World.Tanks.Len())
}

func TestSpawnPointFreedWhenTankDies(t *testing.T) {
	s, _ := newTestSim(t)
	points := addPoints(s, 1)

	s.Spawn(SpawnTank{})
	s.Tick(frame)
	tank := s.World.Tanks.Entities()[0]

	s.World.MarkDespawn(tank)
	s.Tick(frame)
	p, _ := s.World.SpawnPoints.Get(points[0])
	require.False(t, p.Active)

	s.Outcomes.Drain()
	s.Spawn(SpawnTank{})
	s.Tick(frame)
	require.Equal(t, 1, s.World.Tanks.Len())
	require.Empty(t, drainErrs(s))
}

func TestSpawnOnEmptyArena(t *testing.T) {
	s, _ := newTestSim(t)
	s.Spawn(SpawnTank{})
	s.Tick(frame)
	require.ErrorIs(t, drainErrs(s)[0], ErrCapacityExhausted)
}
