package network

import (
	"slices"
	"sort"
	"sync"
)

// Route is a tram number together with the stops it visits, in order.
type Route struct {
	ID    string   `json:"id"`
	Stops []string `json:"stops"`
}

// StopCount returns the number of stops on the route, duplicates included.
func (r Route) StopCount() int {
	return len(r.Stops)
}

// StopTransfers is one stop of an itinerary and the other trams serving it.
type StopTransfers struct {
	Stop      string   `json:"stop"`
	Transfers []string `json:"transfers"`
}

// Itinerary is the answer to a stops-for-tram query.
type Itinerary struct {
	TramID string          `json:"tramId"`
	Stops  []StopTransfers `json:"stops"`
}

// Stats summarizes the size of the network.
type Stats struct {
	Trams int `json:"trams"`
	Stops int `json:"stops"`
}

// Network holds the tram routes and the reverse index from stop name to the
// trams serving it. The zero value is not usable; call New.
type Network struct {
	mu sync.RWMutex

	// tram number -> ordered stops
	routes map[string][]string
	// stop name -> tram numbers in first-seen order
	stops map[string][]string
}

// New returns an empty network.
func New() *Network {
	return &Network{
		routes: make(map[string][]string),
		stops:  make(map[string][]string),
	}
}

// CreateRoute creates or replaces the route named by args[0] with the stops
// in args[1:]. Replacing a route does not remove its number from stops that
// only the previous sequence visited.
func (n *Network) CreateRoute(args []string) (Route, error) {
	if len(args) < 2 {
		return Route{}, NewValidationError("tram number and at least one stop are required")
	}

	id := args[0]
	if err := ValidateTramID(id); err != nil {
		return Route{}, err
	}

	stops := slices.Clone(args[1:])

	n.mu.Lock()
	defer n.mu.Unlock()

	n.routes[id] = stops
	for _, stop := range stops {
		serving := n.stops[stop]
		if !slices.Contains(serving, id) {
			n.stops[stop] = append(serving, id)
		}
	}

	return Route{ID: id, Stops: slices.Clone(stops)}, nil
}

// TramsAtStop returns the trams serving the stop named by args[0] in the
// order they were first registered. An unknown stop yields an empty slice.
func (n *Network) TramsAtStop(args []string) ([]string, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, NewValidationError("specify a stop name")
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.stops[args[0]]), nil
}

// StopsForTram returns the stops of the tram named by args[0] and, for each
// stop, every other tram registered there. It returns ErrTramNotFound when
// the tram number is well formed but unknown.
func (n *Network) StopsForTram(args []string) (Itinerary, error) {
	if len(args) == 0 || args[0] == "" {
		return Itinerary{}, NewValidationError("specify a tram number")
	}
	id := args[0]

	n.mu.RLock()
	defer n.mu.RUnlock()

	stops, ok := n.routes[id]
	if !ok {
		return Itinerary{}, &NotFoundError{TramID: id}
	}

	itinerary := Itinerary{
		TramID: id,
		Stops:  make([]StopTransfers, 0, len(stops)),
	}
	for _, stop := range stops {
		transfers := []string{}
		for _, other := range n.stops[stop] {
			if other != id {
				transfers = append(transfers, other)
			}
		}
		itinerary.Stops = append(itinerary.Stops, StopTransfers{Stop: stop, Transfers: transfers})
	}

	return itinerary, nil
}

// Routes lists every route ordered by the string value of its tram number,
// so "10" sorts before "2".
func (n *Network) Routes() []Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.routes))
	for id := range n.routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	routes := make([]Route, 0, len(ids))
	for _, id := range ids {
		routes = append(routes, Route{ID: id, Stops: slices.Clone(n.routes[id])})
	}
	return routes
}

// Stats returns the number of trams and of stops ever referenced.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Stats{Trams: len(n.routes), Stops: len(n.stops)}
}

// Snapshot is a copy of both indexes, used by debug views.
type Snapshot struct {
	Routes map[string][]string
	Stops  map[string][]string
}

// Snapshot returns deep copies of the route map and the stop index,
// including stale stop entries left by replaced routes.
func (n *Network) Snapshot() Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	snap := Snapshot{
		Routes: make(map[string][]string, len(n.routes)),
		Stops:  make(map[string][]string, len(n.stops)),
	}
	for id, stops := range n.routes {
		snap.Routes[id] = slices.Clone(stops)
	}
	for stop, trams := range n.stops {
		snap.Stops[stop] = slices.Clone(trams)
	}
	return snap
}
