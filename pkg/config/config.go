package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Acquire  AcquireConfig  `yaml:"acquire"`
	Playback PlaybackConfig `yaml:"playback"`
	Timers   TimerConfig    `yaml:"timers"`
	Sim      SimConfig      `yaml:"sim"`
}

// SerialConfig contains serial sink configuration.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// AcquireConfig contains the acquisition channel parameters.
type AcquireConfig struct {
	PeriodMicros int     `yaml:"period_micros"` // trigger period in microseconds
	VRef         float64 `yaml:"vref"`          // ADC reference voltage (V)
}

// PlaybackConfig contains the waveform playback parameters.
type PlaybackConfig struct {
	PeriodMicros int `yaml:"period_micros"` // trigger period in microseconds
}

// TimerConfig bounds the hardware timer supply.
type TimerConfig struct {
	Pool int `yaml:"pool"` // number of hardware timers available
}

// SimConfig contains simulated analog input configuration.
type SimConfig struct {
	AmplitudeVolts float32 `yaml:"amplitude_volts"` // sine amplitude (V)
	OffsetVolts    float32 `yaml:"offset_volts"`    // DC offset (V)
	FreqHz         float32 `yaml:"freq_hz"`         // signal frequency (Hz)
	NoiseVolts     float32 `yaml:"noise_volts"`     // noise level (V)
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyUSB0", // Default for Linux, should be "COM3" on Windows
			Baud: 115200,
		},
		Acquire: AcquireConfig{
			PeriodMicros: 2000, // 500 Hz
			VRef:         3.3,
		},
		Playback: PlaybackConfig{
			PeriodMicros: 4000, // 250 Hz
		},
		Timers: TimerConfig{
			Pool: 2, // one hardware timer per channel
		},
		Sim: SimConfig{
			AmplitudeVolts: 1.0,
			OffsetVolts:    1.65,
			FreqHz:         5.0,
			NoiseVolts:     0.01,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}

	if c.Acquire.PeriodMicros == 0 {
		c.Acquire.PeriodMicros = def.Acquire.PeriodMicros
	}
	if c.Acquire.VRef == 0 {
		c.Acquire.VRef = def.Acquire.VRef
	}

	if c.Playback.PeriodMicros == 0 {
		c.Playback.PeriodMicros = def.Playback.PeriodMicros
	}

	if c.Timers.Pool == 0 {
		c.Timers.Pool = def.Timers.Pool
	}

	if c.Sim.AmplitudeVolts == 0 {
		c.Sim.AmplitudeVolts = def.Sim.AmplitudeVolts
	}
	if c.Sim.OffsetVolts == 0 {
		c.Sim.OffsetVolts = def.Sim.OffsetVolts
	}
	if c.Sim.FreqHz == 0 {
		c.Sim.FreqHz = def.Sim.FreqHz
	}
}
