// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Turret      TurretConfig      `yaml:"turret"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Sensors     SensorsConfig     `yaml:"sensors"`
	Neural      NeuralConfig      `yaml:"neural"`
	Training    TrainingConfig    `yaml:"training"`
	Persistence PersistenceConfig `yaml:"persistence"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the initial viewport dimensions shared by all candidates.
// The graphical front end replaces these with the real window size on resize.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TurretConfig holds turret geometry and turn speed.
type TurretConfig struct {
	Radius         float64 `yaml:"radius"`
	BarrelLength   float64 `yaml:"barrel_length"`
	RotateVelocity float64 `yaml:"rotate_velocity"`
}

// ProjectileConfig holds projectile parameters.
type ProjectileConfig struct {
	Size     float64 `yaml:"size"`      // width = 1.5*size, height = 2.5*size
	Speed    float64 `yaml:"speed"`
	Cooldown float64 `yaml:"cooldown"`  // seconds between fire-network queries that fire
	ShotCost float64 `yaml:"shot_cost"` // score deducted per shot
}

// EnemyConfig holds enemy parameters.
type EnemyConfig struct {
	Size          float64 `yaml:"size"` // width = 7.5*size, height = 10*size
	Speed         float64 `yaml:"speed"`
	Cooldown      float64 `yaml:"cooldown"`
	InitialDelay  float64 `yaml:"initial_delay"`  // first spawn after this many seconds
	SpawnDistance float64 `yaml:"spawn_distance"` // added to the view ray length
}

// SensorsConfig holds raycast sensor parameters.
type SensorsConfig struct {
	NumRays       int     `yaml:"num_rays"`
	ViewRayLength float64 `yaml:"view_ray_length"`
}

// NeuralConfig holds network topology.
type NeuralConfig struct {
	HiddenLayers    []int `yaml:"hidden_layers"`
	SteeringOutputs int   `yaml:"steering_outputs"`
	FireOutputs     int   `yaml:"fire_outputs"`
}

// TrainingConfig holds generation scheduling parameters.
type TrainingConfig struct {
	Population     int     `yaml:"population"`
	TrainingTime   float64 `yaml:"training_time"`
	FastDeltaTime  float64 `yaml:"fast_delta_time"`
	MaxTweakChange float64 `yaml:"max_tweak_change"`
	StartupDelay   float64 `yaml:"startup_delay"`
	RealTime       bool    `yaml:"real_time"`
}

// PersistenceConfig holds weight file naming.
type PersistenceConfig struct {
	Dir            string `yaml:"dir"`
	SteeringPrefix string `yaml:"steering_prefix"`
	FirePrefix     string `yaml:"fire_prefix"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TurretRadius     float32
	BarrelLength     float32
	BarrelWidth      float32
	RotateVelocity   float32
	ProjectileWidth  float32
	ProjectileHeight float32
	ProjectileSpeed  float32
	EnemyWidth       float32
	EnemyHeight      float32
	EnemySpeed       float32
	SpawnRadius      float32 // view ray length + spawn distance
	HitRadius        float32 // (projectile height + enemy height) / 2
	BreachRadius     float32 // turret radius + enemy height / 2
	ViewRayLength    float32
	FastDT32         float32
	TrainingTime32   float32
	SteeringLayers   []int // input, hidden..., steering outputs
	FireLayers       []int // input, hidden..., fire outputs
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Sensors.NumRays < 1 {
		return fmt.Errorf("sensors.num_rays must be positive, got %d", c.Sensors.NumRays)
	}
	if c.Neural.SteeringOutputs < 1 || c.Neural.FireOutputs < 1 {
		return fmt.Errorf("neural outputs must be positive")
	}
	for _, h := range c.Neural.HiddenLayers {
		if h < 1 {
			return fmt.Errorf("neural.hidden_layers entries must be positive, got %d", h)
		}
	}
	if c.Training.Population != 0 && (c.Training.Population < 2 || c.Training.Population%2 != 0) {
		return fmt.Errorf("training.population must be 0 or an even number >= 2, got %d", c.Training.Population)
	}
	if c.Training.FastDeltaTime <= 0 {
		return fmt.Errorf("training.fast_delta_time must be positive, got %v", c.Training.FastDeltaTime)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	d := &c.Derived
	d.TurretRadius = float32(c.Turret.Radius)
	d.BarrelLength = float32(c.Turret.BarrelLength)
	d.BarrelWidth = float32(2 * c.Turret.BarrelLength / 3)
	d.RotateVelocity = float32(c.Turret.RotateVelocity)

	d.ProjectileWidth = float32(1.5 * c.Projectile.Size)
	d.ProjectileHeight = float32(2.5 * c.Projectile.Size)
	d.ProjectileSpeed = float32(c.Projectile.Speed)

	d.EnemyWidth = float32(7.5 * c.Enemy.Size)
	d.EnemyHeight = float32(10 * c.Enemy.Size)
	d.EnemySpeed = float32(c.Enemy.Speed)

	d.ViewRayLength = float32(c.Sensors.ViewRayLength)
	d.SpawnRadius = float32(c.Sensors.ViewRayLength + c.Enemy.SpawnDistance)
	d.HitRadius = (d.ProjectileHeight + d.EnemyHeight) / 2
	d.BreachRadius = d.TurretRadius + d.EnemyHeight/2

	d.FastDT32 = float32(c.Training.FastDeltaTime)
	d.TrainingTime32 = float32(c.Training.TrainingTime)

	d.SteeringLayers = layerSizes(c.Sensors.NumRays, c.Neural.HiddenLayers, c.Neural.SteeringOutputs)
	d.FireLayers = layerSizes(c.Sensors.NumRays, c.Neural.HiddenLayers, c.Neural.FireOutputs)
}

func layerSizes(inputs int, hidden []int, outputs int) []int {
	sizes := make([]int, 0, len(hidden)+2)
	sizes = append(sizes, inputs)
	sizes = append(sizes, hidden...)
	return append(sizes, outputs)
}

// WorldW32 returns the initial viewport width as float32.
func (c *Config) WorldW32() float32 { return float32(c.World.Width) }

// WorldH32 returns the initial viewport height as float32.
func (c *Config) WorldH32() float32 { return float32(c.World.Height) }

// EnemyCooldown returns the enemy spawn interval as float32.
func (c *Config) EnemyCooldown() float32 { return float32(c.Enemy.Cooldown) }

// FireCooldown returns the projectile cooldown as float32.
func (c *Config) FireCooldown() float32 { return float32(c.Projectile.Cooldown) }

// StartupDelaySeconds returns the startup delay, never negative.
func (c *Config) StartupDelaySeconds() float64 {
	return math.Max(0, c.Training.StartupDelay)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
