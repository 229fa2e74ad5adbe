package main

import (
	"flag"
	"io"

	"tramnet.onebusaway.org/internal/app"
)

// loadConfig builds the configuration from defaults, an optional YAML file,
// the environment (after loading the .env file) and finally the flags that
// were set explicitly on the command line.
func loadConfig(args []string, lookup func(string) (string, bool), stderr io.Writer) (app.Config, error) {
	var (
		flagValues  app.Config
		configPath  string
		dotEnvPath  string
		apiKeysFlag string
	)

	fs := flag.NewFlagSet("tramnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	fs.StringVar(&dotEnvPath, "dotenv", ".env", "Path to a .env file with TRAMNET_* variables")
	fs.StringVar(&flagValues.Env, "env", "", "Environment (development|test|production)")
	fs.StringVar(&flagValues.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	fs.StringVar(&flagValues.Script, "script", "", "Read commands from this file instead of standard input")
	fs.BoolVar(&flagValues.Quiet, "quiet", false, "Do not print the greeting and prompts")
	fs.StringVar(&flagValues.DebugAddr, "debug-addr", "", "Serve the read-only HTTP view on this address")
	fs.StringVar(&apiKeysFlag, "api-keys", "", "Comma separated API keys required by the HTTP view")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, err
	}

	cfg := app.DefaultConfig()
	if configPath != "" {
		if err := app.LoadConfigFile(configPath, &cfg); err != nil {
			return app.Config{}, err
		}
	}

	if err := app.LoadDotEnv(dotEnvPath); err != nil {
		return app.Config{}, err
	}
	app.ApplyEnvironment(&cfg, lookup)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "env":
			cfg.Env = flagValues.Env
		case "log-level":
			cfg.LogLevel = flagValues.LogLevel
		case "script":
			cfg.Script = flagValues.Script
		case "quiet":
			cfg.Quiet = flagValues.Quiet
		case "debug-addr":
			cfg.DebugAddr = flagValues.DebugAddr
		case "api-keys":
			cfg.APIKeys = app.SplitAPIKeys(apiKeysFlag)
		}
	})

	if err := cfg.Validate(); err != nil {
		return app.Config{}, err
	}
	return cfg, nil
}
