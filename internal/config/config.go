package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/solodynamo/1-billion-row-challenge/internal/generator"
)

type Generator struct {
	Places []string `envconfig:"GENDATA_PLACES" default:"Hamburg,Bulawayo,Palembang,St. John's,Cracow,Bridgetown,Istanbul,Roseau,Conakry"`
	Min    float64  `envconfig:"GENDATA_TEMP_MIN" default:"-30"`
	Max    float64  `envconfig:"GENDATA_TEMP_MAX" default:"50"`
	// Seed is nil unless GENDATA_SEED is set.
	Seed *uint64 `envconfig:"GENDATA_SEED"`
}

type Stats struct {
	// Workers <= 0 means one per CPU.
	Workers int `envconfig:"GENDATA_STATS_WORKERS" default:"0"`
}

type Config struct {
	Generator Generator
	Stats     Stats

	LogsPath string `envconfig:"LOGS_PATH"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Options converts the generator settings.
func (c *Config) Options() generator.Options {
	return generator.Options{
		Places: append([]string(nil), c.Generator.Places...),
		Min:    c.Generator.Min,
		Max:    c.Generator.Max,
		Seed:   c.Generator.Seed,
	}
}

// NewConfig loads .env files (if present) and then the environment.
func NewConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
