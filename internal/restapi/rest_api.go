package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"tramnet.onebusaway.org/internal/app"
)

// RestAPI is a read-only HTTP view of the application's tram network.
type RestAPI struct {
	*app.Application
}

func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}

// Handler returns the routed API wrapped in its middleware chain.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/api/trams", api.tramsHandler)
	router.HandlerFunc(http.MethodGet, "/api/trams/:id", api.stopsForTramHandler)
	router.HandlerFunc(http.MethodGet, "/api/stops/:name", api.tramsAtStopHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", api.debugIndexHandler)

	var handler http.Handler = router
	handler = api.requireAPIKey(handler)
	handler = securityHeaders(handler)
	handler = requestLogger(api.Logger, handler)
	return handler
}

// requireAPIKey rejects requests without a configured key. It is a no-op
// when no keys are configured.
func (api *RestAPI) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.APIKeysEnabled() && api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
