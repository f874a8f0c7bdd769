package world

import (
	"math"
	"time"
)

type TankConfig struct {
	LinearSpeed  float32 `toml:"linear_speed"`
	AngularSpeed float32 `toml:"angular_speed"`
}

type TurretConfig struct {
	RotationSpeed float32 `toml:"rotation_speed"`
	// DeadZone is in degrees.
	DeadZone float32 `toml:"dead_zone"`
}

type WeaponConfig struct {
	Damage      uint8   `toml:"damage"`
	BulletSpeed float32 `toml:"bullet_speed"`
	TTLSeconds  float64 `toml:"ttl_seconds"`
}

func (w WeaponConfig) TTL() time.Duration {
	return time.Duration(w.TTLSeconds * float64(time.Second))
}

type PaintConfig struct {
	IntervalSeconds float64 `toml:"interval_seconds"`
	Height          float32 `toml:"height"`
	Radius          float32 `toml:"radius"`
	RayLift         float32 `toml:"ray_lift"`
	RayLength       float32 `toml:"ray_length"`
	Bullets         bool    `toml:"bullets"`
}

func (p PaintConfig) Interval() time.Duration {
	return time.Duration(p.IntervalSeconds * float64(time.Second))
}

type Config struct {
	Tank   TankConfig   `toml:"tank"`
	Turret TurretConfig `toml:"turret"`
	Weapon WeaponConfig `toml:"weapon"`
	Paint  PaintConfig  `toml:"paint"`
}

func DefaultConfig() Config {
	return Config{
		Tank: TankConfig{
			LinearSpeed:  10,
			AngularSpeed: 50,
		},
		Turret: TurretConfig{
			RotationSpeed: 3,
			DeadZone:      1,
		},
		Weapon: WeaponConfig{
			Damage:      50,
			BulletSpeed: 20,
			TTLSeconds:  2,
		},
		Paint: PaintConfig{
			IntervalSeconds: 0.01,
			Height:          0.1,
			Radius:          0.1,
			RayLift:         0.5,
			RayLength:       5,
			Bullets:         true,
		},
	}
}

func (t TurretConfig) deadZoneRadians() float32 {
	return t.DeadZone * math.Pi / 180
}
