package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tramnet.onebusaway.org/internal/appconf"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, appconf.Development, cfg.Environment())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("overlays values present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tramnet.yml")
		content := "env: production\nlog_level: debug\ndebug_addr: 127.0.0.1:8081\napi_keys:\n  - abc\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg := DefaultConfig()
		cfg.Quiet = true
		require.NoError(t, LoadConfigFile(path, &cfg))

		assert.Equal(t, appconf.Production, cfg.Environment())
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "127.0.0.1:8081", cfg.DebugAddr)
		assert.Equal(t, []string{"abc"}, cfg.APIKeys)
		assert.True(t, cfg.Quiet)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := DefaultConfig()
		err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yml"), &cfg)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("env: [unterminated"), 0o600))

		cfg := DefaultConfig()
		assert.Error(t, LoadConfigFile(path, &cfg))
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "unknown env", mutate: func(c *Config) { c.Env = "staging" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "debug addr without port", mutate: func(c *Config) { c.DebugAddr = "localhost" }, wantErr: true},
		{name: "debug addr with port only", mutate: func(c *Config) { c.DebugAddr = ":8080" }, wantErr: false},
		{name: "blank api key", mutate: func(c *Config) { c.APIKeys = []string{""} }, wantErr: true},
		{name: "test env", mutate: func(c *Config) { c.Env = "test" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnvironment(t *testing.T) {
	env := map[string]string{
		EnvVarEnv:      "test",
		EnvVarLogLevel: "warn",
		EnvVarAPIKeys:  " a, ,b ",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	cfg.DebugAddr = ":9000"
	ApplyEnvironment(&cfg, lookup)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.DebugAddr)
	assert.Equal(t, []string{"a", "b"}, cfg.APIKeys)
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("loads variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TRAMNET_TEST_DOTENV=loaded\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("TRAMNET_TEST_DOTENV") })

		require.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "loaded", os.Getenv("TRAMNET_TEST_DOTENV"))
	})
}
