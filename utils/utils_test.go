package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"painttanks/world"
)

// TestReadTOML checks that keys in the file win and everything else keeps
// its default.
func TestReadTOML(t *testing.T) {
	cfg, err := ReadTOML("testdata/config.toml")
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "0.0.0.0:6969", cfg.Server.Address)
	require.Equal(t, 4, cfg.Server.Bots)
	require.Equal(t, 60, cfg.Server.TickRate)
	require.Equal(t, []string{"localhost:8080"}, cfg.Server.Origins)

	require.Equal(t, uint8(34), cfg.Game.Weapon.Damage)
	require.Equal(t, float32(20), cfg.Game.Weapon.BulletSpeed)
	require.False(t, cfg.Game.Paint.Bullets)
	require.Equal(t, float32(3), cfg.Game.Turret.RotationSpeed)

	require.Equal(t, float32(1.5), cfg.Physics.LinearDamping)
	require.Equal(t, float32(8), cfg.Physics.AngularDamping)
	require.Len(t, cfg.Arena.Assets, 4)
}

func TestReadTOMLErrors(t *testing.T) {
	_, err := ReadTOML("testdata/missing.toml")
	require.Error(t, err)

	_, err = ReadTOML("testdata/broken.toml")
	require.ErrorContains(t, err, "parse")

	_, err = ReadTOML("testdata/invalid.toml")
	require.ErrorContains(t, err, "tick_rate")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, world.DefaultConfig(), cfg.Game)
	require.InDelta(t, 1.0/60, cfg.Server.TickInterval().Seconds(), 1e-6)
	require.InDelta(t, 0.05, cfg.Server.SnapshotInterval().Seconds(), 1e-9)

	for _, k := range world.BodyKinds() {
		require.Contains(t, cfg.Arena.Assets, k.Asset())
	}
	for _, k := range world.TurretKinds() {
		require.Contains(t, cfg.Arena.Assets, k.Asset())
	}
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"snapshot rate": func(c *Config) { c.Server.SnapshotRate = 0 },
		"bots":          func(c *Config) { c.Server.Bots = -1 },
		"tile size":     func(c *Config) { c.Arena.TileSize = 0 },
		"damage":        func(c *Config) { c.Game.Weapon.Damage = 0 },
		"ttl":           func(c *Config) { c.Game.Weapon.TTLSeconds = 0 },
		"paint":         func(c *Config) { c.Game.Paint.IntervalSeconds = -1 },
		"turret":        func(c *Config) { c.Game.Turret.RotationSpeed = 0.5 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("warn")
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = NewLogger("chatty")
	require.Error(t, err)
}
