package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. JUMPCORE_PHYSICS_GRAVITY.
const EnvPrefix = "JUMPCORE"

type file struct {
	Physics  PhysicsConfig  `mapstructure:"physics"`
	Mover    MoverConfig    `mapstructure:"mover"`
	Platform PlatformConfig `mapstructure:"platform"`
	Sim      SimConfig      `mapstructure:"sim"`
	Log      LogConfig      `mapstructure:"log"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

// Load overlays the current values with an optional config file and
// JUMPCORE_* environment variables. An empty path reads the environment only.
func Load(path string) error {
	v := viper.New()
	current := file{
		Physics:  Physics,
		Mover:    Mover,
		Platform: Platform,
		Sim:      Sim,
		Log:      Log,
		Debug:    Debug,
	}
	setDefaults(v, current)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var out file
	if err := v.Unmarshal(&out); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := out.validate(); err != nil {
		return err
	}

	Physics = out.Physics
	Mover = out.Mover
	Platform = out.Platform
	Sim = out.Sim
	Log = out.Log
	Debug = out.Debug
	return nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, f file) {
	v.SetDefault("physics.tile_size", f.Physics.TileSize)
	v.SetDefault("physics.gravity", f.Physics.Gravity)
	v.SetDefault("physics.max_fall_speed", f.Physics.MaxFallSpeed)
	v.SetDefault("physics.ground_friction", f.Physics.GroundFriction)
	v.SetDefault("physics.air_friction", f.Physics.AirFriction)
	v.SetDefault("physics.fixed_delta", f.Physics.FixedDelta)
	v.SetDefault("physics.sub_steps", f.Physics.SubSteps)

	v.SetDefault("mover.width", f.Mover.Width)
	v.SetDefault("mover.height", f.Mover.Height)
	v.SetDefault("mover.speed_x", f.Mover.SpeedX)
	v.SetDefault("mover.max_speed", f.Mover.MaxSpeed)
	v.SetDefault("mover.ramp_time", f.Mover.RampTime)

	v.SetDefault("platform.height", f.Platform.Height)
	v.SetDefault("platform.distance", f.Platform.Distance)
	v.SetDefault("platform.duration", f.Platform.Duration)

	v.SetDefault("sim.tick_rate", f.Sim.TickRate)
	v.SetDefault("sim.ticks", f.Sim.Ticks)

	v.SetDefault("log.level", f.Log.Level)
	v.SetDefault("log.file", f.Log.File)
	v.SetDefault("log.max_size_mb", f.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", f.Log.MaxBackups)

	v.SetDefault("debug.dump_queues", f.Debug.DumpQueues)
}

func (f file) validate() error {
	switch {
	case f.Physics.TileSize <= 0:
		return fmt.Errorf("physics.tile_size must be positive, got %v", f.Physics.TileSize)
	case f.Physics.FixedDelta < 0:
		return fmt.Errorf("physics.fixed_delta must not be negative, got %v", f.Physics.FixedDelta)
	case f.Physics.SubSteps < 1:
		return fmt.Errorf("physics.sub_steps must be at least 1, got %d", f.Physics.SubSteps)
	case f.Sim.TickRate < 1:
		return fmt.Errorf("sim.tick_rate must be at least 1, got %d", f.Sim.TickRate)
	}
	return nil
}
