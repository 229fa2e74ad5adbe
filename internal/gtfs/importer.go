package gtfs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tramnet.onebusaway.org/internal/logging"
	"tramnet.onebusaway.org/internal/network"
)

// Importer feeds the tram routes of a static GTFS feed into a network.
type Importer struct {
	network *network.Network
	logger  *slog.Logger
}

func NewImporter(n *network.Network, logger *slog.Logger) *Importer {
	return &Importer{network: n, logger: logger}
}

// ImportResult lists the tram numbers created or replaced by an import.
type ImportResult struct {
	Source  string
	TramIDs []string
}

// Import loads source, a local zip path or an http(s) URL, and creates one
// route per tram route found. Nothing is written to the network when the
// feed cannot be read or parsed.
func (i *Importer) Import(ctx context.Context, source string) (ImportResult, error) {
	startTime := time.Now()

	staticData, err := loadGTFSData(ctx, source)
	if err != nil {
		logging.LogError(i.logger, "failed to load GTFS feed", err,
			slog.String("source", source),
			slog.String("component", "gtfs_import"))
		return ImportResult{}, err
	}

	result := ImportResult{Source: source}
	for _, route := range TramRoutes(staticData) {
		if _, err := i.network.CreateRoute(route.Args()); err != nil {
			return result, fmt.Errorf("error creating tram %s: %w", route.ID, err)
		}
		result.TramIDs = append(result.TramIDs, route.ID)
	}

	logging.LogOperation(i.logger, "gtfs_trams_imported",
		slog.String("source", source),
		slog.Int("trams", len(result.TramIDs)),
		slog.Int("warnings", len(staticData.Warnings)),
		slog.Duration("duration", time.Since(startTime)))

	return result, nil
}
