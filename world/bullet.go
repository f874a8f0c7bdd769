package world

import (
	"context"

	"go.uber.org/zap"
)

const bulletRadius = 0.2

// fireBullets spawns one projectile per Fire command at the turret's muzzle.
// A shot that cannot be resolved this tick is lost, not retried.
func (s *Simulation) fireBullets() {
	for _, cmd := range s.Fires.Drain() {
		if !s.World.Tanks.Has(cmd.Tank) {
			s.reject(CommandFire, cmd.Tank, ErrEntityNotFound)
			continue
		}
		muzzle, kind, ok := s.resolveMuzzle(cmd.Tank)
		if !ok {
			s.reject(CommandFire, cmd.Tank, ErrResourceUnavailable)
			continue
		}
		at, _ := s.World.GlobalTransform(muzzle)
		s.spawnBullet(cmd.Tank, at, kind.Weapon(s.Config.Weapon))
	}
}

func (s *Simulation) resolveMuzzle(tank Entity) (Entity, TurretKind, bool) {
	turret, ok := ChildWith(s.World, tank, s.World.Turrets)
	if !ok {
		return NilEntity, 0, false
	}
	t, _ := s.World.Turrets.Get(turret)
	if !s.Assets.Loaded(t.Kind.Asset()) {
		return NilEntity, 0, false
	}
	muzzle, ok := ChildWith(s.World, turret, s.World.Muzzles)
	if !ok {
		return NilEntity, 0, false
	}
	return muzzle, t.Kind, true
}

func (s *Simulation) spawnBullet(owner Entity, at Transform, weapon WeaponConfig) Entity {
	w := s.World
	team, _ := w.Teams.Get(owner)

	e := w.Spawn()
	w.Bullets.Set(e, Bullet{
		Damage: max(weapon.Damage, 1),
		TTL:    NewTimer(weapon.TTL(), TimerOnce),
		Owner:  owner,
	})
	w.Transforms.Set(e, at)
	w.Velocities.Set(e, Velocity{Linear: at.Forward().Scale(weapon.BulletSpeed)})

	collider := SphereCollider(bulletRadius)
	collider.Body = BodyDynamic
	w.Colliders.Set(e, collider)
	w.Teams.Set(e, team)
	if s.Config.Paint.Bullets {
		w.Painters.Set(e, NewPaintingObject(team, s.Config.Paint))
	}

	s.metrics.shots.Add(context.Background(), 1, teamAttr(team))
	return e
}

// ageBullets expires projectiles whose time-to-live ran out. Bullets already
// consumed by a hit are left to the sweep.
func (s *Simulation) ageBullets() {
	w := s.World
	for _, e := range w.Bullets.Entities() {
		if w.PendingDespawn(e) {
			continue
		}
		bullet, _ := w.Bullets.Get(e)
		bullet.TTL.Tick(s.dt)
		w.Bullets.Set(e, bullet)
		if bullet.TTL.JustFinished() {
			w.MarkDespawn(e)
		}
	}
}

// applyImpacts turns projectile-vs-tank contacts into damage. A projectile is
// spent on its first such contact even when the tank has no health left.
func (s *Simulation) applyImpacts() {
	w := s.World
	for _, c := range s.Collisions.Drain() {
		bullet, tank, ok := s.impactPair(c)
		if !ok || w.PendingDespawn(bullet) {
			continue
		}
		b, _ := w.Bullets.Get(bullet)
		health, _ := w.Healths.Get(tank)
		remaining := health.Sub(b.Damage)
		w.Healths.Set(tank, remaining)

		team, _ := w.Teams.Get(b.Owner)
		s.metrics.hits.Add(context.Background(), 1, teamAttr(team))

		if remaining == 0 {
			if health > 0 {
				s.metrics.kills.Add(context.Background(), 1, teamAttr(team))
				s.log.Info("tank destroyed",
					zapTick(s.tick),
					zapEntity("tank", tank),
					zapEntity("by", b.Owner),
				)
			}
			w.MarkDespawn(tank)
		} else {
			s.log.Debug("tank hit",
				zapTick(s.tick),
				zapEntity("tank", tank),
				zap.Uint8("health", uint8(remaining)),
			)
		}
		w.MarkDespawn(bullet)
	}
}

func (s *Simulation) impactPair(c CollisionStart) (bullet, tank Entity, ok bool) {
	w := s.World
	switch {
	case w.Bullets.Has(c.A) && w.Healths.Has(c.B):
		return c.A, c.B, true
	case w.Bullets.Has(c.B) && w.Healths.Has(c.A):
		return c.B, c.A, true
	}
	return NilEntity, NilEntity, false
}
