package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const frame = time.Second / 60

// flatRays is a ray caster for a flat floor. A ray straight down hits the
// newest paint mark under it, or the floor.
type flatRays struct {
	floor Entity
}

func (f flatRays) CastRay(w *World, origin, dir Vector, maxDist float32, filter func(Entity) bool) (RayHit, bool) {
	hit := RayHit{Entity: f.floor, Point: Vector{X: origin.X, Z: origin.Z}, Distance: origin.Y}
	w.Paints.ForEach(func(e Entity, _ Paint) {
		if !filter(e) {
			return
		}
		t, _ := w.Transforms.Get(e)
		if t.Position.Sub(origin).XZ().Length() <= 0.1 {
			hit.Entity, hit.Point = e, t.Position
		}
	})
	return hit, filter(hit.Entity) && hit.Distance <= maxDist
}

func newTestSim(t *testing.T, opts ...Option) (*Simulation, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	opts = append([]Option{
		WithLogger(zap.New(core)),
		WithMeter(noop.NewMeterProvider().Meter("test")),
	}, opts...)

	s, err := NewSimulation(DefaultConfig(), opts...)
	require.NoError(t, err)
	return s, logs
}

// spawnOn adds a spawn point at (x, 0.5, z) and spawns one tank on it.
func spawnOn(t *testing.T, s *Simulation, x, z float32, req SpawnTank) Entity {
	t.Helper()
	s.World.AddSpawnPoint(NewTransform(x, 0.5, z))
	tank, err := s.spawnTank(req)
	require.NoError(t, err)
	return tank
}

func drainErrs(s *Simulation) []error {
	var errs []error
	for _, o := range s.Outcomes.Drain() {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errs
}
