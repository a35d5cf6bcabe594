package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, 2000, cfg.Acquire.PeriodMicros)
	assert.Equal(t, float64(3.3), cfg.Acquire.VRef)
	assert.Equal(t, 4000, cfg.Playback.PeriodMicros)
	assert.Equal(t, 2, cfg.Timers.Pool)
	assert.Equal(t, float32(1.65), cfg.Sim.OffsetVolts)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyACM0"
  baud: 921600

acquire:
  period_micros: 1000
  vref: 5.0

playback:
  period_micros: 8000

timers:
  pool: 4

sim:
  amplitude_volts: 0.5
  offset_volts: 2.5
  freq_hz: 1.0
  noise_volts: 0.0
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 921600, cfg.Serial.Baud)
	assert.Equal(t, 1000, cfg.Acquire.PeriodMicros)
	assert.Equal(t, float64(5.0), cfg.Acquire.VRef)
	assert.Equal(t, 8000, cfg.Playback.PeriodMicros)
	assert.Equal(t, 4, cfg.Timers.Pool)
	assert.Equal(t, float32(0.5), cfg.Sim.AmplitudeVolts)
	assert.Equal(t, float32(2.5), cfg.Sim.OffsetVolts)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyACM0"
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// Should use defaults for missing fields
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud)        // default
	assert.Equal(t, 2000, cfg.Acquire.PeriodMicros) // default
	assert.Equal(t, float64(3.3), cfg.Acquire.VRef) // default
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyS5"
	cfg.Acquire.PeriodMicros = 500

	tmpfile, err := os.CreateTemp("", "test_save_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	err = cfg.Save(tmpfile.Name())
	require.NoError(t, err)

	// Load it back and verify
	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyS5", loaded.Serial.Port)
	assert.Equal(t, 500, loaded.Acquire.PeriodMicros)
}
