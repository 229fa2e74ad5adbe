package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"tramnet.onebusaway.org/internal/appconf"
)

// Config holds all the configuration settings for the Application. Values
// come from defaults, an optional YAML file, the environment and finally
// command-line flags, each layer overriding the previous one.
type Config struct {
	Env       string   `yaml:"env" validate:"omitempty,oneof=development test production"`
	LogLevel  string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	Script    string   `yaml:"script"`
	Quiet     bool     `yaml:"quiet"`
	DebugAddr string   `yaml:"debug_addr" validate:"omitempty,hostname_port"`
	APIKeys   []string `yaml:"api_keys" validate:"dive,required"`
}

// Environment variables read by ApplyEnvironment.
const (
	EnvVarEnv       = "TRAMNET_ENV"
	EnvVarLogLevel  = "TRAMNET_LOG_LEVEL"
	EnvVarDebugAddr = "TRAMNET_DEBUG_ADDR"
	EnvVarAPIKeys   = "TRAMNET_API_KEYS"
)

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Env:      appconf.Development.String(),
		LogLevel: "info",
	}
}

// Environment returns the parsed operating environment.
func (c Config) Environment() appconf.Environment {
	return appconf.EnvFromString(c.Env)
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfigFile overlays the YAML file at path onto cfg. Keys missing
// from the file keep their current values.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads variables from a .env style file into the process
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnvironment overrides cfg with any TRAMNET_* variables returned by
// lookup, which is normally os.LookupEnv.
func ApplyEnvironment(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvVarEnv); ok && v != "" {
		cfg.Env = v
	}
	if v, ok := lookup(EnvVarLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvVarDebugAddr); ok && v != "" {
		cfg.DebugAddr = v
	}
	if v, ok := lookup(EnvVarAPIKeys); ok && v != "" {
		cfg.APIKeys = SplitAPIKeys(v)
	}
}

// SplitAPIKeys splits a comma separated key list, trimming blanks.
func SplitAPIKeys(list string) []string {
	var keys []string
	for _, key := range strings.Split(list, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
