package config

// PhysicsConfig contains world physics values. Units are world units (pixels)
// and seconds; the world is Y-up.
type PhysicsConfig struct {
	TileSize     float64 `mapstructure:"tile_size"`
	Gravity      float64 `mapstructure:"gravity"`        // Acceleration applied to vy each second
	MaxFallSpeed float64 `mapstructure:"max_fall_speed"` // Downward speed clamp

	// Horizontal damping multipliers applied each sub-step
	GroundFriction float64 `mapstructure:"ground_friction"`
	AirFriction    float64 `mapstructure:"air_friction"`

	FixedDelta float64 `mapstructure:"fixed_delta"` // Seconds per tick, split across sub-steps
	SubSteps   int     `mapstructure:"sub_steps"`   // Sub-steps per tick
}

// Steps is SubSteps, never less than one.
func (p PhysicsConfig) Steps() int {
	return max(p.SubSteps, 1)
}

// StepDelta is the simulated time of one sub-step.
func (p PhysicsConfig) StepDelta() float64 {
	return p.FixedDelta / float64(p.Steps())
}

// MoverConfig contains the defaults for bodies spawned from level sprites.
type MoverConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// Horizontal drive of "mover" sprites. They turn around at walls.
	// Players start at rest with no drive.
	SpeedX   float64 `mapstructure:"speed_x"`
	MaxSpeed float64 `mapstructure:"max_speed"`
	RampTime float64 `mapstructure:"ramp_time"` // Seconds to reach full drive
}

// PlatformConfig contains floating platform movement.
type PlatformConfig struct {
	Height   float64 `mapstructure:"height"`
	Distance float64 `mapstructure:"distance"` // Units travelled up before returning
	Duration float64 `mapstructure:"duration"` // Seconds per leg
}

// SimConfig contains loop settings.
type SimConfig struct {
	TickRate int `mapstructure:"tick_rate"` // Ticks per second in realtime mode
	Ticks    int `mapstructure:"ticks"`     // Ticks to run, 0 runs until stopped
}

// LogConfig contains logging output settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // Empty logs to stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DumpQueues bool `mapstructure:"dump_queues"` // Log every resolved queue
}

// Global configuration instances
var Physics PhysicsConfig
var Mover MoverConfig
var Platform PlatformConfig
var Sim SimConfig
var Log LogConfig
var Debug DebugConfig

// AppName is the storage namespace used for snapshots.
const AppName = "jumpcore"

func init() {
	Reset()
}

// Reset restores every value to its default.
func Reset() {
	const ps = 16.0

	// Physics Config
	Physics = PhysicsConfig{
		TileSize:     ps,
		Gravity:      -20 * ps,
		MaxFallSpeed: 30 * ps,

		GroundFriction: 0.6,
		AirFriction:    0.98,

		FixedDelta: 1.0 / 60.0,
		SubSteps:   1,
	}

	// Mover Config
	Mover = MoverConfig{
		Width:    ps * 0.75,
		Height:   ps * 1.75,
		SpeedX:   72,
		MaxSpeed: 6.5 * ps,
		RampTime: 0.6,
	}

	// Platform Config
	Platform = PlatformConfig{
		Height:   ps / 2,
		Distance: 4 * ps,
		Duration: 2,
	}

	Sim = SimConfig{
		TickRate: 60,
		Ticks:    600,
	}

	Log = LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}

	Debug = DebugConfig{}
}
