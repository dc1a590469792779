package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix     = "EMPLOYEES"
	configPathEnv = "EMPLOYEES_CONFIG_PATH"

	defaultEnv         = "production"
	defaultStoragePath = "employees.json"
)

var ErrConfigNotFound = errors.New("config file does not exist")

type Config struct {
	Env     string        `yaml:"env"`     // Env is the current environment: local, development, production.
	Storage StorageConfig `yaml:"storage"` // Storage holds the employee file settings
	Metrics MetricsConfig `yaml:"metrics"` // Metrics holds the metrics export settings
}

// StorageConfig struct holds the location of the employee collection.
type StorageConfig struct {
	Path string `yaml:"path"` // Path is the JSON file holding every employee record.
}

// MetricsConfig struct holds the node exporter textfile settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Textfile is where metrics are dumped after each run. Empty disables it.
}

// Load reads the configuration from the environment and, when EMPLOYEES_CONFIG_PATH is set,
// from that YAML file. Environment values win over the file, the file wins over defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("env", defaultEnv)
	v.SetDefault("storage.path", defaultStoragePath)
	v.SetDefault("metrics.textfile", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath := os.Getenv(configPathEnv); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		Env: v.GetString("env"),
		Storage: StorageConfig{
			Path: v.GetString("storage.path"),
		},
		Metrics: MetricsConfig{
			Textfile: v.GetString("metrics.textfile"),
		},
	}, nil
}
