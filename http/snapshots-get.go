package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
)

func (httpserver *HttpServer) getSnapshots(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !httpserver.requireAdmin(w, r) {
		return
	}

	keys, err := httpserver.boardSrvc.Snapshots(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	writeJsonSuccessResponse(w, keys)
}
