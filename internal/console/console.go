package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"tramnet.onebusaway.org/internal/app"
	"tramnet.onebusaway.org/internal/command"
	"tramnet.onebusaway.org/internal/gtfs"
	"tramnet.onebusaway.org/internal/logging"
	"tramnet.onebusaway.org/internal/network"
)

// Console reads commands line by line and applies them to the
// application's network, writing a text report for each one.
type Console struct {
	*app.Application
	importer  *gtfs.Importer
	out       io.Writer
	quiet     bool
	sessionID string
	logger    *slog.Logger
}

// New creates a console writing reports to out. In quiet mode the greeting
// and prompts are left out, which suits scripted input.
func New(application *app.Application, out io.Writer, quiet bool) *Console {
	sessionID := uuid.NewString()
	logger := application.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("component", "console"), slog.String("session_id", sessionID))

	return &Console{
		Application: application,
		importer:    gtfs.NewImporter(application.Network, logger),
		out:         out,
		quiet:       quiet,
		sessionID:   sessionID,
		logger:      logger,
	}
}

// Run processes in until QUIT, end of input or ctx is cancelled. Only a
// failure to read in is returned as an error.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx = logging.WithLogger(ctx, c.logger)

	if !c.quiet {
		writeGreeting(c.out)
	}

	reader := bufio.NewReader(in)

	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if !c.quiet {
			fmt.Fprint(c.out, "\n>>> ")
		}

		// Lines are not length limited; a final line without a newline
		// arrives together with io.EOF.
		line, readErr := reader.ReadString('\n')
		if line != "" {
			lines++
			if cmd, ok := command.Parse(line); ok {
				if quit := c.Execute(ctx, cmd); quit {
					logging.LogOperation(c.logger, "console_quit", slog.Int("lines", lines))
					return nil
				}
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			logging.LogError(c.logger, "failed to read command input", readErr, slog.Int("lines", lines))
			return fmt.Errorf("error reading commands: %w", readErr)
		}
	}

	logging.LogOperation(c.logger, "console_input_closed", slog.Int("lines", lines))
	return nil
}

// Execute applies one command and reports whether the console should stop.
func (c *Console) Execute(ctx context.Context, cmd command.Command) bool {
	logger := logging.FromContext(ctx)
	logger.Debug("command received",
		slog.String("command", cmd.Kind.String()),
		slog.Int("args", len(cmd.Args)))

	var err error
	switch cmd.Kind {
	case command.CreateTram:
		var route network.Route
		if route, err = c.Network.CreateRoute(cmd.Args); err == nil {
			writeCreated(c.out, route)
		}
	case command.TramsInStop:
		var trams []string
		if trams, err = c.Network.TramsAtStop(cmd.Args); err == nil {
			writeTramsAtStop(c.out, cmd.Args[0], trams)
		}
	case command.StopsInTram:
		var itinerary network.Itinerary
		if itinerary, err = c.Network.StopsForTram(cmd.Args); err == nil {
			writeItinerary(c.out, itinerary)
		}
	case command.Trams:
		writeRoutes(c.out, c.Network.Routes())
	case command.ImportGTFS:
		err = c.importGTFS(ctx, cmd.Args)
	case command.Help:
		fmt.Fprint(c.out, helpText)
	case command.Quit:
		fmt.Fprintln(c.out, "exiting")
		return true
	case command.Unknown:
		logger.Debug("unknown command", slog.String("keyword", cmd.Keyword))
		fmt.Fprintln(c.out, "unknown command")
	}

	if err != nil {
		c.reportError(logger, cmd, err)
	}
	return false
}

func (c *Console) importGTFS(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return network.NewValidationError("specify a GTFS zip path or URL")
	}

	result, err := c.importer.Import(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "imported %d trams from %s\n", len(result.TramIDs), result.Source)
	return nil
}

func (c *Console) reportError(logger *slog.Logger, cmd command.Command, err error) {
	switch {
	case errors.Is(err, network.ErrInvalidArguments):
		logger.Warn("command rejected",
			slog.String("command", cmd.Kind.String()),
			slog.String("reason", err.Error()))
	case errors.Is(err, network.ErrTramNotFound):
		logger.Debug("tram not found", slog.String("command", cmd.Kind.String()))
	default:
		logging.LogError(logger, "command failed", err, slog.String("command", cmd.Kind.String()))
	}
	writeError(c.out, err)
}
