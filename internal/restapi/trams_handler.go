package restapi

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"tramnet.onebusaway.org/internal/network"
)

type tramEntry struct {
	ID        string   `json:"id"`
	StopCount int      `json:"stopCount"`
	Stops     []string `json:"stops"`
}

type listData struct {
	List []tramEntry `json:"list"`
}

func (api *RestAPI) tramsHandler(w http.ResponseWriter, r *http.Request) {
	routes := api.Network.Routes()

	entries := make([]tramEntry, 0, len(routes))
	for _, route := range routes {
		entries = append(entries, tramEntry{
			ID:        route.ID,
			StopCount: route.StopCount(),
			Stops:     route.Stops,
		})
	}

	api.sendResponse(w, r, newOKResponse(listData{List: entries}))
}

type entryData struct {
	Entry any `json:"entry"`
}

func (api *RestAPI) stopsForTramHandler(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	if err := network.ValidateTramID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	itinerary, err := api.Network.StopsForTram([]string{id})
	if errors.Is(err, network.ErrTramNotFound) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	api.sendResponse(w, r, newOKResponse(entryData{Entry: itinerary}))
}

type stopEntry struct {
	Name    string   `json:"name"`
	TramIDs []string `json:"tramIds"`
}

func (api *RestAPI) tramsAtStopHandler(w http.ResponseWriter, r *http.Request) {
	name := httprouter.ParamsFromContext(r.Context()).ByName("name")

	trams, err := api.Network.TramsAtStop([]string{name})
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"name": {err.Error()}})
		return
	}
	if trams == nil {
		trams = []string{}
	}

	api.sendResponse(w, r, newOKResponse(entryData{Entry: stopEntry{Name: name, TramIDs: trams}}))
}
