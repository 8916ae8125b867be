package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig  `yaml:"logging"`
	Booking BookingConfig  `yaml:"booking"`
	Flights []FlightConfig `yaml:"flights"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type BookingConfig struct {
	StrictCancellation bool `yaml:"strict_cancellation"`
}

// FlightConfig describes one flight to seed the ledger with on startup.
type FlightConfig struct {
	Number     string `yaml:"number"`
	TotalSeats int    `yaml:"total_seats"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
