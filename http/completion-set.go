package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
)

func (httpserver *HttpServer) setCompletion(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireAdmin(w, r) {
		return
	}

	type completionRequest struct {
		Name      string `json:"name"`
		Grade     string `json:"grade"`
		Sugiot    []int  `json:"sugiotCompleted"`
		Kartisiot []int  `json:"kartisiotCompleted"`
	}

	var request completionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received completion update",
		"student", request.Name, "grade", request.Grade,
		"sugiot", len(request.Sugiot), "kartisiot", len(request.Kartisiot))

	res, err := httpserver.boardSrvc.UpdateCompletion(
		r.Context(), request.Name, request.Grade, request.Sugiot, request.Kartisiot)
	if err != nil {
		handleJsonLookupError(logger, w, err)
		return
	}

	writeJsonSuccessResponse(w, res)
}
