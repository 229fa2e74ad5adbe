package restapi

import (
	"encoding/json"
	"net/http"
	"time"

	"tramnet.onebusaway.org/internal/logging"
)

// ResponseModel is the envelope shared by every JSON response.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Data        any    `json:"data,omitempty"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func responseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func newOKResponse(data any) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: responseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response ResponseModel) {
	api.writeJSON(w, response.Code, response)
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, http.StatusNotFound, "resource not found")
}

func (api *RestAPI) writeJSON(w http.ResponseWriter, status int, body any) {
	setJSONResponseType(w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.LogError(api.Logger, "failed to encode response", err)
	}
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
