package world

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawnNeverReusesIDs(t *testing.T) {
	w := NewWorld()
	a := w.Spawn()
	w.MarkDespawn(a)
	w.Sweep()
	b := w.Spawn()
	require.NotEqual(t, NilEntity, a)
	require.NotEqual(t, a, b)
	require.False(t, w.Alive(a))
}

func TestDespawnCascadesToChildren(t *testing.T) {
	s, _ := newTestSim(t)
	tank := spawnOn(t, s, 0, 0, SpawnTank{})
	turret, ok := ChildWith(s.World, tank, s.World.Turrets)
	require.True(t, ok)
	muzzle, ok := ChildWith(s.World, turret, s.World.Muzzles)
	require.True(t, ok)

	s.World.MarkDespawn(tank)
	s.World.MarkDespawn(tank)
	require.Equal(t, 1, s.World.Sweep())

	for _, e := range []Entity{tank, turret, muzzle} {
		require.False(t, s.World.Alive(e))
		require.False(t, s.World.Transforms.Has(e))
	}
	require.False(t, s.World.Parents.Has(muzzle))
}

func TestMarkDespawnIgnoresDeadEntities(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.MarkDespawn(e)
	w.Sweep()

	w.MarkDespawn(e)
	require.False(t, w.PendingDespawn(e))
	require.Zero(t, w.Sweep())
}

func TestDespawnChildOnly(t *testing.T) {
	w := NewWorld()
	parent, child := w.Spawn(), w.Spawn()
	w.SetParent(child, parent)

	w.MarkDespawn(child)
	w.Sweep()
	require.True(t, w.Alive(parent))
	require.Empty(t, w.Children(parent))
}

func TestGlobalTransformComposesParents(t *testing.T) {
	w := NewWorld()
	parent, child := w.Spawn(), w.Spawn()
	pt := NewTransform(1, 0, 1)
	pt.RotateY(math.Pi / 2)
	w.Transforms.Set(parent, pt)
	w.Transforms.Set(child, NewTransform(0, 0.5, -1))
	w.SetParent(child, parent)

	global, ok := w.GlobalTransform(child)
	require.True(t, ok)
	// A quarter turn to the left puts the child's forward offset on -X.
	require.InDelta(t, 0, global.Position.X, 1e-5)
	require.InDelta(t, 0.5, global.Position.Y, 1e-5)
	require.InDelta(t, 1, global.Position.Z, 1e-5)
	require.InDelta(t, math.Pi/2, global.Yaw, 1e-5)
}

func TestTransformAxes(t *testing.T) {
	var tr Transform
	require.Equal(t, Vector{Z: -1}, tr.Forward())
	require.Equal(t, Vector{X: 1}, tr.Right())

	tr.RotateY(-math.Pi / 2)
	require.InDelta(t, 1, tr.Forward().X, 1e-6)

	tr.RotateY(-math.Pi)
	tr.RotateY(-math.Pi)
	require.InDelta(t, -math.Pi/2, tr.Yaw, 1e-5)
}

func TestTimerModes(t *testing.T) {
	once := NewTimer(1500*frame, TimerOnce)
	for i := 0; i < 1499; i++ {
		once.Tick(frame)
		require.False(t, once.JustFinished())
	}
	once.Tick(frame)
	require.True(t, once.JustFinished())
	once.Tick(frame)
	require.False(t, once.JustFinished())
	require.True(t, once.Finished())

	repeating := NewTimer(2*frame, TimerRepeating)
	repeating.Tick(frame)
	require.False(t, repeating.JustFinished())
	repeating.Tick(frame)
	require.True(t, repeating.JustFinished())
	repeating.Tick(5 * frame)
	require.Equal(t, 2, repeating.TimesFinished())
	require.Equal(t, frame, repeating.Elapsed)
}

func TestHealthSaturates(t *testing.T) {
	require.Equal(t, Health(50), MaxHealth.Sub(50))
	require.Equal(t, Health(0), Health(50).Sub(50))
	require.Equal(t, Health(0), Health(10).Sub(255))
}
