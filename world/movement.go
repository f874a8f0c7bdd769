package world

// moveTanks adds velocity on top of whatever the tank already has. Speed is
// bounded only by the physics service's damping.
func (s *Simulation) moveTanks() {
	dt := s.deltaSeconds()
	cfg := s.Config.Tank

	for _, cmd := range s.Movements.Drain() {
		if !s.World.Tanks.Has(cmd.Tank) {
			s.reject(CommandMovement, cmd.Tank, ErrEntityNotFound)
			continue
		}
		transform, ok := s.World.Transforms.Get(cmd.Tank)
		if !ok {
			s.reject(CommandMovement, cmd.Tank, ErrEntityNotFound)
			continue
		}
		velocity, _ := s.World.Velocities.Get(cmd.Tank)
		applyMovement(&velocity, transform, cmd, dt, cfg)
		s.World.Velocities.Set(cmd.Tank, velocity)
	}
}

func applyMovement(v *Velocity, t Transform, cmd Movement, dt float32, cfg TankConfig) {
	amount := clamp(cmd.Magnitude, -1, 1)
	switch cmd.Axis {
	case AxisLinear:
		forward := t.Forward()
		v.Linear.X += forward.X * amount * dt * cfg.LinearSpeed
		v.Linear.Z += forward.Z * amount * dt * cfg.LinearSpeed
	case AxisAngular:
		v.Angular += amount * dt * cfg.AngularSpeed
	}
}
