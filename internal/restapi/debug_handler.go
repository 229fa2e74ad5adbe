package restapi

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	dataStruct := debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (api *RestAPI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "routes":
		data = api.Network.Snapshot().Routes
		title = "Tram Network - Routes"
	case "stops":
		data = api.Network.Snapshot().Stops
		title = "Tram Network - Stops"
	case "", "stats":
		data = api.Network.Stats()
		title = "Tram Network - Stats"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stats, routes, stops.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
