package server

import (
	"math"
	"time"

	"painttanks/world"
)

const (
	respawnDelay = 3 * time.Second
	reloadDelay  = 800 * time.Millisecond
	// fireCone is how far off target the turret may be when a bot pulls the
	// trigger.
	fireCone    = 5 * math.Pi / 180
	engageRange = 6
	// steerGain keeps the hull's turn toward a target close to critically
	// damped under the default angular speed and damping.
	steerGain = 0.3
)

// bot drives one program-controlled tank. It asks for a tank, hunts the
// closest enemy with it, and asks again a while after losing it.
type bot struct {
	req     world.SpawnTank
	tank    world.Entity
	pending bool
	respawn world.Timer
	reload  world.Timer
}

func newBot(team world.Color, turret world.TurretKind) *bot {
	return &bot{
		req: world.SpawnTank{
			Player: world.PlayerProgram,
			Team:   team,
			Body:   world.BodyBasic,
			Turret: turret,
		},
		respawn: world.NewTimer(0, world.TimerOnce),
		reload:  world.NewTimer(0, world.TimerOnce),
	}
}

// think queues this tick's commands. It returns true when it sent a spawn
// request whose Outcome is still owed.
func (b *bot) think(sim *world.Simulation, dt time.Duration) bool {
	if b.pending {
		return false
	}
	w := sim.World
	if !w.Tanks.Has(b.tank) {
		if b.tank != world.NilEntity {
			b.tank = world.NilEntity
			b.respawn = world.NewTimer(respawnDelay, world.TimerOnce)
		}
		b.respawn.Tick(dt)
		if !b.respawn.Finished() {
			return false
		}
		sim.Spawn(b.req)
		b.pending = true
		return true
	}

	b.reload.Tick(dt)
	me, _ := w.Transforms.Get(b.tank)
	target, ok := nearestEnemy(w, b.tank, me.Position)
	if !ok {
		sim.Move(b.tank, world.AxisAngular, 0.3)
		return false
	}

	sim.Aim(b.tank, target.X, target.Z)
	if angle, ok := sim.AimError(b.tank, target.X, target.Z); ok && angle <= fireCone && b.reload.Finished() {
		sim.FireAt(b.tank)
		b.reload = world.NewTimer(reloadDelay, world.TimerOnce)
	}
	drive(sim, b.tank, me, target)
	return false
}

// settle records the answer to the bot's spawn request.
func (b *bot) settle(o world.Outcome) {
	b.pending = false
	if o.Err != nil {
		b.respawn = world.NewTimer(respawnDelay, world.TimerOnce)
		return
	}
	b.tank = o.Tank
}

func nearestEnemy(w *world.World, self world.Entity, from world.Vector) (world.Vector, bool) {
	team, _ := w.Teams.Get(self)

	var (
		best  world.Vector
		dist  float32
		found bool
	)
	w.Tanks.ForEach(func(e world.Entity, _ world.Tank) {
		if e == self || w.PendingDespawn(e) {
			return
		}
		if other, _ := w.Teams.Get(e); other == team {
			return
		}
		at, ok := w.Transforms.Get(e)
		if !ok {
			return
		}
		d := at.Position.Sub(from).XZ().Length()
		if !found || d < dist {
			best, dist, found = at.Position, d, true
		}
	})
	return best, found
}

// drive turns the hull toward target and closes to engageRange, backing off
// when too close.
func drive(sim *world.Simulation, tank world.Entity, me world.Transform, target world.Vector) {
	to := target.Sub(me.Position).XZ()
	dist := to.Length()
	dir := to.Normalize()
	side, ahead := me.Right().Dot(dir), me.Forward().Dot(dir)

	turn := -side * steerGain
	if ahead < 0 {
		turn = -float32(math.Copysign(steerGain, float64(side)))
	}
	sim.Move(tank, world.AxisAngular, turn)

	switch {
	case dist > engageRange && ahead > 0.5:
		sim.Move(tank, world.AxisLinear, 1)
	case dist < engageRange/2:
		sim.Move(tank, world.AxisLinear, -0.5)
	}
}

// squad owns every bot in a match and matches spawn Outcomes back to the bots
// that asked, in request order.
type squad struct {
	bots    []*bot
	waiting []*bot
}

func newSquad(n int) *squad {
	teams := []world.Color{world.TeamBlue, world.TeamRed}
	turrets := world.TurretKinds()

	s := &squad{bots: make([]*bot, 0, n)}
	for i := 0; i < n; i++ {
		s.bots = append(s.bots, newBot(teams[i%len(teams)], turrets[(i/len(teams))%len(turrets)]))
	}
	return s
}

func (s *squad) think(sim *world.Simulation, dt time.Duration) {
	for _, b := range s.bots {
		if b.think(sim, dt) {
			s.waiting = append(s.waiting, b)
		}
	}
}

func (s *squad) settle(outcomes []world.Outcome) {
	for _, o := range outcomes {
		if o.Command != world.CommandSpawnTank || len(s.waiting) == 0 {
			continue
		}
		s.waiting[0].settle(o)
		s.waiting = s.waiting[1:]
	}
}
