package server

import (
	"fmt"
	"os"
	"time"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"painttanks/physics"
	"painttanks/utils"
	"painttanks/world"
)

// arena is one match: the simulation, its map and the bots playing in it.
// Only the goroutine that calls step may touch it.
type arena struct {
	id    ksuid.KSUID
	sim   *world.Simulation
	squad *squad
	dt    time.Duration
}

func newArena(cfg *utils.Config, log *zap.Logger) (*arena, error) {
	m, err := loadMap(cfg.Arena)
	if err != nil {
		return nil, err
	}

	id := ksuid.New()
	sim, err := world.NewSimulation(cfg.Game,
		world.WithLogger(log.With(zap.Stringer("match", id))),
		world.WithAssets(world.NewAssets(cfg.Arena.Assets...)),
		world.WithPhysics(physics.New(cfg.Physics)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	m.Build(sim.World)
	log.Info("arena built",
		zap.Stringer("match", id),
		zap.Int("spawn_points", sim.World.SpawnPoints.Len()),
		zap.Strings("assets", sim.Assets.Names()),
	)

	return &arena{
		id:    id,
		sim:   sim,
		squad: newSquad(cfg.Server.Bots),
		dt:    cfg.Server.TickInterval(),
	}, nil
}

func loadMap(cfg utils.ArenaConfig) (*world.Map, error) {
	contents := world.DefaultMap
	if cfg.MapFile != "" {
		b, err := os.ReadFile(cfg.MapFile)
		if err != nil {
			return nil, fmt.Errorf("reading map: %w", err)
		}
		contents = string(b)
	}
	m, err := world.LoadMap(contents, cfg.TileSize)
	if err != nil {
		return nil, fmt.Errorf("loading map %q: %w", cfg.MapFile, err)
	}
	return m, nil
}

// step advances the match by one fixed tick. Bots queue their commands first
// so the simulation consumes them in the same tick.
func (a *arena) step() {
	a.squad.think(a.sim, a.dt)
	a.sim.Tick(a.dt)
	a.squad.settle(a.sim.Outcomes.Drain())
}

// frame renders the current state as a JSON snapshot for spectators.
func (a *arena) frame() ([]byte, error) {
	snap, err := a.sim.Snapshot().ToProto()
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	snap.Fields["match"] = structpb.NewStringValue(a.id.String())
	return protojson.Marshal(snap)
}
