package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  encoding: console

booking:
  strict_cancellation: true

flights:
  - number: "SU-1492"
    total_seats: 158
  - number: "SU-035"
    total_seats: 87
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding)
	assert.True(t, cfg.Booking.StrictCancellation)
	require.Len(t, cfg.Flights, 2)
	assert.Equal(t, FlightConfig{Number: "SU-1492", TotalSeats: 158}, cfg.Flights[0])
	assert.Equal(t, FlightConfig{Number: "SU-035", TotalSeats: 87}, cfg.Flights[1])
}

func TestLoadConfig_FileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "flights: [broken")

	cfg, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config")
}
