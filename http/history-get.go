package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/httplog/v2"
)

func (httpserver *HttpServer) getHistory(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJsonErrorResponse(w,
				"limit must be a positive integer",
				http.StatusBadRequest,
				"validation_error")
			return
		}
		limit = parsed
	}

	entries, err := httpserver.boardSrvc.History(r.Context(), limit)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	writeJsonSuccessResponse(w, entries)
}
