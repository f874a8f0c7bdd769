package world

type BodyKind int

const (
	BodyBasic BodyKind = iota
	BodyHeavy
)

type bodySpec struct {
	name     string
	asset    string
	size     Vector
	mass     float32
	friction float32
}

var bodySpecs = [...]bodySpec{
	BodyBasic: {
		name:     "basic",
		asset:    "tank_body.gltf",
		size:     Vector{X: 1, Y: 1, Z: 1},
		mass:     100,
		friction: 0.9,
	},
	BodyHeavy: {
		name:     "heavy",
		asset:    "tank_body_heavy.gltf",
		size:     Vector{X: 1.4, Y: 1, Z: 1.6},
		mass:     180,
		friction: 0.95,
	},
}

func BodyKinds() []BodyKind {
	return []BodyKind{BodyBasic, BodyHeavy}
}

func (k BodyKind) spec() bodySpec {
	if k < 0 || int(k) >= len(bodySpecs) {
		return bodySpecs[BodyBasic]
	}
	return bodySpecs[k]
}

func (k BodyKind) String() string { return k.spec().name }

func (k BodyKind) Asset() string { return k.spec().asset }

// build creates the rigid body at the given transform.
func (k BodyKind) build(w *World, at Transform) Entity {
	spec := k.spec()
	e := w.Spawn()
	w.Transforms.Set(e, at)
	w.Velocities.Set(e, Velocity{})

	collider := BoxCollider(spec.size.X, spec.size.Y, spec.size.Z)
	collider.Body = BodyDynamic
	collider.Mass = spec.mass
	collider.Friction = spec.friction
	w.Colliders.Set(e, collider)
	return e
}

type TurretKind int

const (
	TurretBasic TurretKind = iota
	TurretRapid
)

type turretSpec struct {
	name   string
	asset  string
	offset Vector
	muzzle Vector
	weapon func(WeaponConfig) WeaponConfig
}

var turretSpecs = [...]turretSpec{
	TurretBasic: {
		name:   "basic",
		asset:  "tank_turret.gltf",
		offset: Vector{Y: 0.5},
		muzzle: Vector{Y: 0.25, Z: -1},
		weapon: func(w WeaponConfig) WeaponConfig { return w },
	},
	TurretRapid: {
		name:   "rapid",
		asset:  "tank_turret_rapid.gltf",
		offset: Vector{Y: 0.5},
		muzzle: Vector{Y: 0.2, Z: -1.2},
		weapon: func(w WeaponConfig) WeaponConfig {
			w.Damage = max(w.Damage/2, 1)
			w.BulletSpeed *= 1.5
			w.TTLSeconds *= 0.75
			return w
		},
	},
}

func TurretKinds() []TurretKind {
	return []TurretKind{TurretBasic, TurretRapid}
}

func (k TurretKind) spec() turretSpec {
	if k < 0 || int(k) >= len(turretSpecs) {
		return turretSpecs[TurretBasic]
	}
	return turretSpecs[k]
}

func (k TurretKind) String() string { return k.spec().name }

func (k TurretKind) Asset() string { return k.spec().asset }

// Weapon derives this turret's weapon from the configured defaults.
func (k TurretKind) Weapon(base WeaponConfig) WeaponConfig {
	return k.spec().weapon(base)
}

// build attaches a turret and its muzzle under tank.
func (k TurretKind) build(w *World, tank Entity) Entity {
	spec := k.spec()
	turret := w.Spawn()
	w.Turrets.Set(turret, Turret{Kind: k})
	w.Transforms.Set(turret, Transform{Position: spec.offset})
	w.SetParent(turret, tank)

	muzzle := w.Spawn()
	w.Muzzles.Set(muzzle, Muzzle{})
	w.Transforms.Set(muzzle, Transform{Position: spec.muzzle})
	w.SetParent(muzzle, turret)
	return turret
}
