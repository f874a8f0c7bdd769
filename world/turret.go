package world

import "math"

const angleEpsilon = 1.1920929e-07 // float32 machine epsilon

// aimTurrets swings each addressed turret toward its ground target. The
// closer it gets, the slower it turns; inside the dead zone it stops.
func (s *Simulation) aimTurrets() {
	dt := s.deltaSeconds()

	for _, cmd := range s.Aims.Drain() {
		if !s.World.Tanks.Has(cmd.Tank) {
			s.reject(CommandTurretAim, cmd.Tank, ErrEntityNotFound)
			continue
		}
		turret, ok := ChildWith(s.World, cmd.Tank, s.World.Turrets)
		if !ok {
			s.reject(CommandTurretAim, cmd.Tank, ErrEntityNotFound)
			continue
		}
		local, _ := s.World.Transforms.Get(turret)
		global, _ := s.World.GlobalTransform(turret)

		if delta, ok := aimStep(global, cmd.X, cmd.Z, dt, s.Config.Turret); ok {
			local.RotateY(delta)
			s.World.Transforms.Set(turret, local)
		}
	}
}

// aimStep returns the yaw to add this tick, or false when the turret is
// already within the dead zone.
func aimStep(global Transform, x, z, dt float32, cfg TurretConfig) (float32, bool) {
	angle, sign, ok := aimError(global, x, z)
	if !ok {
		return 0, false
	}
	if angle-cfg.deadZoneRadians() <= angleEpsilon {
		return 0, false
	}

	rate := clamp(cfg.RotationSpeed/angle, 1, cfg.RotationSpeed)
	return sign * angle * rate * dt, true
}

// aimError is the unsigned angle between the turret's heading and the
// target, plus the direction to turn.
func aimError(global Transform, x, z float32) (angle, sign float32, ok bool) {
	position := global.Position
	target := Vector{X: x, Y: position.Y, Z: z}

	toTarget := target.Sub(position).Normalize()
	if toTarget == (Vector{}) {
		return 0, 0, false
	}
	forward := global.Forward().Normalize()

	dot := clamp(forward.XZ().Dot(toTarget.XZ()), -1, 1)
	angle = float32(math.Acos(float64(dot)))
	sign = -copySign(1, global.Right().Normalize().Dot(toTarget))
	return angle, sign, true
}

// AimError reports how far tank's turret is from facing (x, z), in radians.
func (s *Simulation) AimError(tank Entity, x, z float32) (float32, bool) {
	turret, ok := ChildWith(s.World, tank, s.World.Turrets)
	if !ok {
		return 0, false
	}
	global, ok := s.World.GlobalTransform(turret)
	if !ok {
		return 0, false
	}
	angle, _, ok := aimError(global, x, z)
	return angle, ok
}
