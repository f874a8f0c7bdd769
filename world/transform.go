package world

// Transform places an entity on the arena. Only yaw is tracked: tanks never
// pitch or roll in a top-down game.
type Transform struct {
	Position Vector
	Yaw      float32
}

func NewTransform(x, y, z float32) Transform {
	return Transform{Position: Vector{X: x, Y: y, Z: z}}
}

// Forward faces -Z at zero yaw.
func (t Transform) Forward() Vector {
	return Vector{Z: -1}.RotateY(t.Yaw)
}

// Right faces +X at zero yaw.
func (t Transform) Right() Vector {
	return Vector{X: 1}.RotateY(t.Yaw)
}

func (t *Transform) RotateY(angle float32) {
	t.Yaw = wrapAngle(t.Yaw + angle)
}

// Mul composes a child's local transform onto its parent's world transform.
func (t Transform) Mul(local Transform) Transform {
	return Transform{
		Position: t.Position.Add(local.Position.RotateY(t.Yaw)),
		Yaw:      wrapAngle(t.Yaw + local.Yaw),
	}
}

// Velocity is integrated by the physics service. Angular is the yaw rate in
// radians per second.
type Velocity struct {
	Linear  Vector
	Angular float32
}
