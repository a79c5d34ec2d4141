package config

import (
	"errors"
	"os"

	"cardgames/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// registry drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config provides configuration for the card games
type Config struct {
	loaded bool
	// Seed shuffles every game with the same deck. 0 uses each game's default seed
	Seed int64 `yaml:"seed" envconfig:"seed"`
	Log  struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Registry struct {
		Driver         string `yaml:"driver" envconfig:"driver"`
		File           string `yaml:"file" envconfig:"file"`
		PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
		MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	} `yaml:"registry"`
	Stats struct {
		Addr string `yaml:"addr" envconfig:"addr"`
	} `yaml:"stats"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Registry.Driver = DriverFile
	cfg.Registry.File = "users.yaml"
	cfg.Registry.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	cfg.Registry.MigrationsPath = "./sql"
	cfg.Stats.Addr = ":5000"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CG_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("cg", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
