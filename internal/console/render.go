package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"tramnet.onebusaway.org/internal/network"
)

const helpText = `available commands:
  CREATE_TRAM <number> <stop1> <stop2>... - add or replace a route
  TRAMS_IN_STOP <stop> - trams passing through this stop
  STOPS_IN_TRAM <number> - stops of a tram with transfers
  TRAMS - list all trams
  IMPORT_GTFS <zip|url> - load tram routes from a GTFS feed
  HELP - show this list
  QUIT - exit
`

func writeGreeting(w io.Writer) {
	fmt.Fprintln(w, "=== tram route registry ===")
	fmt.Fprint(w, helpText)
}

func writeCreated(w io.Writer, route network.Route) {
	fmt.Fprintf(w, "tram %s created. stops: %d\n", route.ID, route.StopCount())
}

func writeTramsAtStop(w io.Writer, stop string, trams []string) {
	if len(trams) == 0 {
		fmt.Fprintf(w, "no tram passes through stop %s\n", stop)
		return
	}
	fmt.Fprintf(w, "trams through %s: %s\n", stop, strings.Join(trams, " "))
}

func writeItinerary(w io.Writer, itinerary network.Itinerary) {
	fmt.Fprintf(w, "route of tram %s:\n", itinerary.TramID)
	for _, stop := range itinerary.Stops {
		transfers := "none"
		if len(stop.Transfers) > 0 {
			transfers = strings.Join(stop.Transfers, " ")
		}
		fmt.Fprintf(w, " - %s (transfers: %s)\n", stop.Stop, transfers)
	}
}

func writeRoutes(w io.Writer, routes []network.Route) {
	if len(routes) == 0 {
		fmt.Fprintln(w, "no trams in the system")
		return
	}
	fmt.Fprintln(w, "all trams:")
	for _, route := range routes {
		fmt.Fprintf(w, "tram #%s (%d stops): %s\n", route.ID, route.StopCount(), strings.Join(route.Stops, " "))
	}
}

// writeError renders the outcome of a failed operation. A missing tram is an
// expected answer and is printed without the error prefix.
func writeError(w io.Writer, err error) {
	var notFound *network.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(w, notFound.Error())
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
}
