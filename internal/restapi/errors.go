package restapi

import (
	"net/http"
)

func (api *RestAPI) sendError(w http.ResponseWriter, status int, text string) {
	api.writeJSON(w, status, ResponseModel{
		Code:        status,
		CurrentTime: responseCurrentTime(),
		Text:        text,
		Version:     2,
	})
}

// invalidAPIKeyResponse keeps version 1 in the envelope, as OneBusAway does
// for permission errors.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeJSON(w, http.StatusUnauthorized, ResponseModel{
		Code:        http.StatusUnauthorized,
		CurrentTime: responseCurrentTime(),
		Text:        "permission denied",
		Version:     1,
	})
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}
	api.writeJSON(w, http.StatusBadRequest, response)
}
