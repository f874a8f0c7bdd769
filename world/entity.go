package world

import "fmt"

// Entity is a stable arena id. Zero is never handed out.
type Entity uint64

const NilEntity Entity = 0

type PlayerKind int

const (
	// PlayerAuto lets the spawn policy decide.
	PlayerAuto PlayerKind = iota
	PlayerUser
	PlayerProgram
)

func (p PlayerKind) String() string {
	switch p {
	case PlayerUser:
		return "user"
	case PlayerProgram:
		return "program"
	}
	return "auto"
}

type Color struct {
	R, G, B, A float32
}

var (
	TeamBlue    = Color{R: 0.1, G: 0.3, B: 1, A: 1}
	TeamRed     = Color{R: 1, G: 0.15, B: 0.1, A: 1}
	TeamNeutral = Color{R: 0.6, G: 0.6, B: 0.6, A: 1}
)

func (c Color) IsZero() bool {
	return c == Color{}
}

func (c Color) Hex() string {
	b := func(f float32) uint8 { return uint8(clamp(f, 0, 1)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}

type Tank struct {
	Player     PlayerKind
	Name       string
	Body       BodyKind
	SpawnPoint Entity
}

// Health saturates at zero.
type Health uint8

const MaxHealth Health = 100

func (h Health) Sub(damage uint8) Health {
	if uint8(h) <= damage {
		return 0
	}
	return h - Health(damage)
}

type Turret struct {
	Kind TurretKind
}

// Muzzle marks where a turret's projectiles appear.
type Muzzle struct{}

type Bullet struct {
	Damage uint8
	TTL    Timer
	Owner  Entity
}

type PaintingObject struct {
	Color    Color
	Throttle Timer
}

type Paint struct {
	Color Color
}

type PaintableSurface struct{}

type SpawnPoint struct {
	Active   bool
	Occupant Entity
}

type pendingDespawn struct{}

type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
	// ShapeDisc is a flat horizontal circle, used for paint marks.
	ShapeDisc
)

type BodyType int

const (
	BodyStatic BodyType = iota
	BodyDynamic
	BodyKinematic
)

type Collider struct {
	Shape    Shape
	Half     Vector
	Radius   float32
	Body     BodyType
	Mass     float32
	Friction float32
	// Sensor colliders answer ray casts but never report collisions.
	Sensor bool
}

func BoxCollider(x, y, z float32) Collider {
	return Collider{Shape: ShapeBox, Half: Vector{X: x / 2, Y: y / 2, Z: z / 2}}
}

func SphereCollider(radius float32) Collider {
	return Collider{Shape: ShapeSphere, Radius: radius}
}

func DiscCollider(radius float32) Collider {
	return Collider{Shape: ShapeDisc, Radius: radius, Sensor: true}
}
