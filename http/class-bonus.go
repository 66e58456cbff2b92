package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
)

func (httpserver *HttpServer) addClassBonus(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireAdmin(w, r) {
		return
	}

	type classBonusRequest struct {
		Grade string  `json:"grade"`
		Bonus float64 `json:"bonus"`
	}

	var request classBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received class bonus request",
		"grade", request.Grade, "bonus", request.Bonus)

	res, err := httpserver.boardSrvc.AddClassBonus(r.Context(), request.Grade, request.Bonus)
	if err != nil {
		handleJsonLookupError(logger, w, err)
		return
	}

	writeJsonSuccessResponse(w, res)
}
