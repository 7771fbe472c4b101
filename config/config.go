// Package config provides configuration loading and access for the site.
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

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Trail     TrailConfig     `yaml:"trail"`
	Orbit     OrbitConfig     `yaml:"orbit"`
	Motion    MotionConfig    `yaml:"motion"`
	Marquee   MarqueeConfig   `yaml:"marquee"`
	Page      PageConfig      `yaml:"page"`
	Contact   ContactConfig   `yaml:"contact"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// Range is a half-open [Min, Max) sampling interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// TrailConfig holds star-trail particle parameters.
type TrailConfig struct {
	PerMove      int   `yaml:"per_move"`      // Particles spawned per pointer-move event
	Size         Range `yaml:"size"`          // Diamond radius in pixels
	Alpha        Range `yaml:"alpha"`         // Spawn colour opacity
	Velocity     Range `yaml:"velocity"`      // Per-axis velocity in pixels per frame
	Decay        Range `yaml:"decay"`         // Life lost per frame
	MaxParticles int   `yaml:"max_particles"` // Live cap with oldest-first eviction (0 = unbounded)
}

// Preset holds one responsive orbit layout preset.
type Preset struct {
	Radius   float64 `yaml:"radius"`    // Orbit radius in pixels
	ItemSize float64 `yaml:"item_size"` // Planet diameter in pixels
	Spacing  float64 `yaml:"spacing"`   // Degrees between neighbouring items
}

// ItemStyle holds the visual emphasis for one carousel item state.
type ItemStyle struct {
	Scale      float64 `yaml:"scale"`
	Opacity    float64 `yaml:"opacity"`
	Grayscale  float64 `yaml:"grayscale"`
	Brightness float64 `yaml:"brightness"`
}

// OrbitConfig holds orbit carousel parameters.
type OrbitConfig struct {
	InitialIndex   int       `yaml:"initial_index"`   // -1 = middle item
	DragThreshold  float64   `yaml:"drag_threshold"`  // Pixels of horizontal drag to change selection
	DragElasticity float64   `yaml:"drag_elasticity"` // Fraction of drag displacement shown while dragging
	Breakpoint     int       `yaml:"breakpoint"`      // Widths below this use the mobile preset
	Desktop        Preset    `yaml:"desktop"`
	Mobile         Preset    `yaml:"mobile"`
	Focused        ItemStyle `yaml:"focused"`
	Resting        ItemStyle `yaml:"resting"`
	StageHeight    float64   `yaml:"stage_height"`
}

// MotionConfig holds transition parameters for carousel visuals.
type MotionConfig struct {
	Stiffness     float64 `yaml:"stiffness"`
	Damping       float64 `yaml:"damping"`
	Mass          float64 `yaml:"mass"`
	StyleDuration float64 `yaml:"style_duration"` // Seconds for scale/opacity tweens
}

// MarqueeConfig holds logo marquee parameters.
type MarqueeConfig struct {
	Speed      float64 `yaml:"speed"`       // Percent of strip width per second
	HoverSpeed float64 `yaml:"hover_speed"` // Speed multiplier while hovered
	Easing     float64 `yaml:"easing"`      // Per-frame approach factor toward target speed
	Copies     int     `yaml:"copies"`      // Times the tech list is repeated in the strip
}

// PageConfig holds page scrolling parameters.
type PageConfig struct {
	NavRevealY      float64 `yaml:"nav_reveal_y"`     // Scroll offset after which nav links show
	WheelStep       float64 `yaml:"wheel_step"`       // Pixels per wheel notch
	ScrollFrequency float64 `yaml:"scroll_frequency"` // Spring angular frequency for smooth scroll
	ScrollDamping   float64 `yaml:"scroll_damping"`   // Spring damping ratio for smooth scroll
	LoaderSeconds   float64 `yaml:"loader_seconds"`   // Welcome overlay duration
}

// ContactConfig holds contact form parameters.
type ContactConfig struct {
	Recipient      string  `yaml:"recipient"`
	Subject        string  `yaml:"subject"`
	SubmitDelay    float64 `yaml:"submit_delay"`    // Seconds spent in the submitting state
	SuccessTimeout float64 `yaml:"success_timeout"` // Seconds the success notice stays up
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	DT              float64 // Seconds per frame at TargetFPS
	SpringFrequency float64 // Angular frequency from stiffness/mass
	SpringDamping   float64 // Damping ratio from damping/stiffness/mass
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

// validate rejects configurations the engines cannot run with.
func (c *Config) validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"trail.size", c.Trail.Size},
		{"trail.alpha", c.Trail.Alpha},
		{"trail.velocity", c.Trail.Velocity},
		{"trail.decay", c.Trail.Decay},
	}
	for _, rc := range ranges {
		if rc.r.Max < rc.r.Min {
			return fmt.Errorf("invalid %s: max %v below min %v", rc.name, rc.r.Max, rc.r.Min)
		}
	}
	if c.Trail.Decay.Min <= 0 {
		return fmt.Errorf("invalid trail.decay: min must be positive, got %v", c.Trail.Decay.Min)
	}
	if c.Trail.PerMove < 0 {
		return fmt.Errorf("invalid trail.per_move: %d", c.Trail.PerMove)
	}
	if c.Trail.MaxParticles < 0 {
		return fmt.Errorf("invalid trail.max_particles: %d", c.Trail.MaxParticles)
	}
	if c.Orbit.DragThreshold < 0 {
		return fmt.Errorf("invalid orbit.drag_threshold: %v", c.Orbit.DragThreshold)
	}
	if c.Motion.Stiffness <= 0 || c.Motion.Mass <= 0 {
		return fmt.Errorf("invalid motion: stiffness and mass must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)

	// Mass-spring-damper: w = sqrt(k/m), zeta = c / (2*sqrt(k*m))
	k, m := c.Motion.Stiffness, c.Motion.Mass
	c.Derived.SpringFrequency = math.Sqrt(k / m)
	c.Derived.SpringDamping = c.Motion.Damping / (2 * math.Sqrt(k*m))
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
