package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Log      LogSettings    `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// LogSettings holds settings for the server logger.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// AnalysisConfig holds the thresholds of every analyzer.
type AnalysisConfig struct {
	Vario    VarioConfig    `yaml:"vario"`
	Thermal  ThermalConfig  `yaml:"thermal"`
	Glide    GlideConfig    `yaml:"glide"`
	Closing  ClosingConfig  `yaml:"closing"`
	Triangle TriangleConfig `yaml:"triangle"`
}

// VarioConfig holds the two canonical averaging windows.
type VarioConfig struct {
	ShortWindow Duration `yaml:"short_window"`
	LongWindow  Duration `yaml:"long_window"`
}

// ThermalConfig holds thermal segmentation thresholds.
type ThermalConfig struct {
	MinClimbRate float64  `yaml:"min_climb_rate"` // m/s on the long-window series
	MinDuration  Duration `yaml:"min_duration"`
}

// GlideConfig holds glide classification thresholds.
type GlideConfig struct {
	ClimbRate         float64 `yaml:"climb_rate"`           // m/s, above = climbing
	SinkRate          float64 `yaml:"sink_rate"`            // m/s, below = gliding
	MinGroundSpeedKmh float64 `yaml:"min_ground_speed_kmh"` // below = not gliding
	MaxLD             float64 `yaml:"max_ld"`               // plausibility cap, exclusive
}

// ClosingConfig holds return-to-launch detection settings.
type ClosingConfig struct {
	MaxDistance Distance `yaml:"max_distance"`
}

// TriangleConfig holds triangle search settings. SampleInterval is the
// precision/performance knob: a smaller interval searches more points.
type TriangleConfig struct {
	SampleInterval  Duration `yaml:"sample_interval"`
	ClosingDistance Distance `yaml:"closing_distance"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogSettings{
			Path:  "./logs/thermalyzer.log",
			Level: "INFO",
		},
		Analysis: AnalysisConfig{
			Vario: VarioConfig{
				ShortWindow: Duration(5 * time.Second),
				LongWindow:  Duration(15 * time.Second),
			},
			Thermal: ThermalConfig{
				MinClimbRate: 0.5,
				MinDuration:  Duration(30 * time.Second),
			},
			Glide: GlideConfig{
				ClimbRate:         0.1,
				SinkRate:          -0.1,
				MinGroundSpeedKmh: 5.0,
				MaxLD:             50.0,
			},
			Closing: ClosingConfig{
				MaxDistance: Distance(100),
			},
			Triangle: TriangleConfig{
				SampleInterval:  Duration(20 * time.Second),
				ClosingDistance: Distance(100),
			},
		},
	}
}

// Load loads the configuration from the given path. If the file does not
// exist, it is created with default values. If it exists, defaults are
// merged with the stored values but not saved back (preserving user
// formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Thermalyzer Configuration
# ------------------------
# Supported Units:
#   Duration: ns, us, ms, s, m, h, d (day), w (week)
#   Distance: m (meters), km (kilometers), nm (nautical miles), ft (feet)

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}
