package app

import (
	"log/slog"

	"tramnet.onebusaway.org/internal/network"
)

// Application holds the dependencies shared by the console and the HTTP
// view: configuration, the logger and the one tram network of the process.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Network *network.Network
}

// New builds an Application around an empty network.
func New(config Config, logger *slog.Logger) *Application {
	return &Application{
		Config:  config,
		Logger:  logger,
		Network: network.New(),
	}
}
