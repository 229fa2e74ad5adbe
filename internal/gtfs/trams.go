package gtfs

import (
	"sort"
	"strings"

	"github.com/jamespfennell/gtfs"
	"tramnet.onebusaway.org/internal/network"
)

// GTFS route_type 0 covers trams, streetcars and light rail.
const tramRouteType = 0

// TramRoute is a GTFS route reduced to a tram number and one stop pattern.
type TramRoute struct {
	ID    string
	Stops []string
}

// Args returns the route in CREATE_TRAM argument form.
func (r TramRoute) Args() []string {
	return append([]string{r.ID}, r.Stops...)
}

// TramRoutes extracts the tram routes of a static feed. A route is kept when
// its type is tram and its short name (or, failing that, its id) is a valid
// tram number. The stop pattern is taken from the route's trip with the most
// stop times. Routes sharing a tram number keep the longest pattern. The
// result is ordered by tram number as text.
func TramRoutes(staticData *gtfs.Static) []TramRoute {
	byID := make(map[string]TramRoute)

	for i := range staticData.Trips {
		trip := &staticData.Trips[i]
		if trip.Route == nil || int(trip.Route.Type) != tramRouteType {
			continue
		}

		id := tramNumber(trip.Route)
		if id == "" {
			continue
		}

		stops := tripStops(trip)
		if len(stops) == 0 {
			continue
		}

		if current, ok := byID[id]; ok && len(current.Stops) >= len(stops) {
			continue
		}
		byID[id] = TramRoute{ID: id, Stops: stops}
	}

	routes := make([]TramRoute, 0, len(byID))
	for _, route := range byID {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].ID < routes[j].ID
	})
	return routes
}

func tramNumber(route *gtfs.Route) string {
	for _, candidate := range []string{route.ShortName, route.Id} {
		candidate = strings.TrimSpace(candidate)
		if network.ValidateTramID(candidate) == nil {
			return candidate
		}
	}
	return ""
}

func tripStops(trip *gtfs.ScheduledTrip) []string {
	stopTimes := make([]gtfs.ScheduledStopTime, 0, len(trip.StopTimes))
	for _, st := range trip.StopTimes {
		if st.Stop != nil {
			stopTimes = append(stopTimes, st)
		}
	}
	sort.SliceStable(stopTimes, func(i, j int) bool {
		return stopTimes[i].StopSequence < stopTimes[j].StopSequence
	})

	stops := make([]string, 0, len(stopTimes))
	for _, st := range stopTimes {
		if token := StopToken(st.Stop); token != "" {
			stops = append(stops, token)
		}
	}
	return stops
}

// StopToken turns a GTFS stop into a single command token: its name, or its
// id when unnamed, with runs of whitespace replaced by underscores.
func StopToken(stop *gtfs.Stop) string {
	name := stop.Name
	if strings.TrimSpace(name) == "" {
		name = stop.Id
	}
	return strings.Join(strings.Fields(name), "_")
}
