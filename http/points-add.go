package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/gemarathon/backend/xlsxstore"
)

func (httpserver *HttpServer) addPoints(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireAdmin(w, r) {
		return
	}

	type addPointsRequest struct {
		Name   string  `json:"name"`
		Grade  string  `json:"grade"`
		Points float64 `json:"points"`
	}

	var request addPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received add points request",
		"student", request.Name, "grade", request.Grade, "points", request.Points)

	res, err := httpserver.boardSrvc.AddPoints(r.Context(), request.Name, request.Grade, request.Points)
	if err != nil {
		handleJsonLookupError(logger, w, err)
		return
	}

	writeJsonSuccessResponse(w, res)
}

func (httpserver *HttpServer) addPointsBatch(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireAdmin(w, r) {
		return
	}

	type batchRequest struct {
		Students []xlsxstore.StudentRef `json:"students"`
		Points   float64                `json:"points"`
	}

	var request batchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received batch points request",
		"count", len(request.Students), "points", request.Points)

	results, err := httpserver.boardSrvc.AddPointsBatch(r.Context(), request.Students, request.Points)
	if err != nil {
		handleJsonLookupError(logger, w, err)
		return
	}

	writeJsonSuccessResponse(w, results)
}
