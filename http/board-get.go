package http

import (
	"net/http"
	"strconv"
)

func (httpserver *HttpServer) getBoard(w http.ResponseWriter, r *http.Request) {
	limit := 10
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

	view := httpserver.boardSrvc.GetBoard(r.Context(), limit)
	writeJsonSuccessResponse(w, view)
}
