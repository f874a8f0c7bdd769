package world

type Axis int

const (
	AxisLinear Axis = iota
	AxisAngular
)

func (a Axis) String() string {
	if a == AxisAngular {
		return "angular"
	}
	return "linear"
}

// Movement asks a tank to drive forward/back (linear) or turn (angular).
// Magnitude is clamped to [-1, 1].
type Movement struct {
	Tank      Entity
	Axis      Axis
	Magnitude float32
}

// TurretAim points a tank's turret at a ground position.
type TurretAim struct {
	Tank Entity
	X, Z float32
}

type Fire struct {
	Tank Entity
}

// SpawnTank requests a new tank. Zero Player and Team are filled in by the
// simulation's Assigner.
type SpawnTank struct {
	Player PlayerKind
	Team   Color
	Body   BodyKind
	Turret TurretKind
}

// CollisionStart is reported by the physics service when two colliders
// begin to touch.
type CollisionStart struct {
	A, B Entity
}

type Command int

const (
	CommandMovement Command = iota
	CommandTurretAim
	CommandFire
	CommandSpawnTank
)

func (c Command) String() string {
	switch c {
	case CommandMovement:
		return "movement"
	case CommandTurretAim:
		return "turret_aim"
	case CommandFire:
		return "fire"
	case CommandSpawnTank:
		return "spawn_tank"
	}
	return "unknown"
}

// Outcome reports what happened to a command that did not simply succeed,
// plus every successful spawn. Err is nil on success.
type Outcome struct {
	Tick    int64
	Command Command
	Tank    Entity
	Err     error
}
