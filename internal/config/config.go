package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override, e.g. REDUXKIT_LOG_LEVEL.
const EnvPrefix = "REDUXKIT"

// FileEnv names an explicit config file, bypassing the search paths.
const FileEnv = EnvPrefix + "_CONFIG"

// Config holds the library's ambient configuration.
type Config struct {
	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration for the default diagnostic sink.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from reduxkit.yaml (if present) and environment.
// When REDUXKIT_CONFIG is set, that file is loaded instead and must exist.
func Load() (*Config, error) {
	if path := os.Getenv(FileEnv); path != "" {
		return LoadFile(path)
	}

	v := newViper()
	v.SetConfigName("reduxkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found, use defaults and env
	}

	return unmarshal(v)
}

// LoadFile loads configuration from an explicit file path plus environment.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")
}
