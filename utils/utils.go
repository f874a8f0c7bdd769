package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"painttanks/physics"
	"painttanks/world"
)

type LogConfig struct {
	Level string `toml:"level"`
}

type ServerConfig struct {
	Address string `toml:"address"`
	// TickRate is in ticks per second.
	TickRate     int      `toml:"tick_rate"`
	SnapshotRate int      `toml:"snapshot_rate"`
	Origins      []string `toml:"origins"`
	Bots         int      `toml:"bots"`
}

func (s ServerConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

func (s ServerConfig) SnapshotInterval() time.Duration {
	return time.Second / time.Duration(s.SnapshotRate)
}

type ArenaConfig struct {
	// MapFile is read instead of the built-in arena when set.
	MapFile  string   `toml:"map_file"`
	TileSize float32  `toml:"tile_size"`
	Assets   []string `toml:"assets"`
}

type Config struct {
	Log     LogConfig      `toml:"log"`
	Server  ServerConfig   `toml:"server"`
	Arena   ArenaConfig    `toml:"arena"`
	Game    world.Config   `toml:"game"`
	Physics physics.Config `toml:"physics"`
}

func DefaultConfig() *Config {
	assets := make([]string, 0, 4)
	for _, k := range world.BodyKinds() {
		assets = append(assets, k.Asset())
	}
	for _, k := range world.TurretKinds() {
		assets = append(assets, k.Asset())
	}

	return &Config{
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Address:      "localhost:4242",
			TickRate:     60,
			SnapshotRate: 20,
			Origins:      []string{"localhost:8080"},
			Bots:         2,
		},
		Arena: ArenaConfig{
			TileSize: 1,
			Assets:   assets,
		},
		Game:    world.DefaultConfig(),
		Physics: physics.DefaultConfig(),
	}
}

// ReadTOML overlays the file on top of DefaultConfig.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileName, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Server.TickRate <= 0:
		return fmt.Errorf("server.tick_rate must be positive")
	case c.Server.SnapshotRate <= 0:
		return fmt.Errorf("server.snapshot_rate must be positive")
	case c.Server.Bots < 0:
		return fmt.Errorf("server.bots must not be negative")
	case c.Arena.TileSize <= 0:
		return fmt.Errorf("arena.tile_size must be positive")
	case c.Game.Weapon.Damage == 0:
		return fmt.Errorf("game.weapon.damage must be positive")
	case c.Game.Weapon.TTLSeconds <= 0 || math.IsInf(c.Game.Weapon.TTLSeconds, 0):
		return fmt.Errorf("game.weapon.ttl_seconds must be positive and finite")
	case c.Game.Paint.IntervalSeconds <= 0:
		return fmt.Errorf("game.paint.interval_seconds must be positive")
	case c.Game.Turret.RotationSpeed < 1:
		return fmt.Errorf("game.turret.rotation_speed must be at least 1")
	}
	return nil
}
