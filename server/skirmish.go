package server

import (
	"context"

	"go.uber.org/zap"

	"painttanks/utils"
	"painttanks/world"
)

// Skirmish plays a bots-only match without any network, as fast as the CPU
// allows, and returns the final state. It stops early when ctx is done.
func Skirmish(ctx context.Context, cfg *utils.Config, log *zap.Logger, ticks int) (*world.Snapshot, error) {
	a, err := newArena(cfg, log)
	if err != nil {
		return nil, err
	}

	log = log.With(zap.Stringer("match", a.id))
	log.Info("skirmish started", zap.Int("bots", len(a.squad.bots)), zap.Int("ticks", ticks))
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		a.step()
	}

	snap := a.sim.Snapshot()
	log.Info("skirmish finished",
		zap.Int64("tick", snap.Tick),
		zap.Int("tanks", len(snap.Tanks)),
		zap.Int("paint", len(snap.Paints)),
	)
	return snap, nil
}
