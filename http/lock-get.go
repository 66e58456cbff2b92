package http

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v2"
)

type lockState struct {
	Locked  bool   `json:"locked"`
	Message string `json:"message,omitempty"`
}

// getLock reports whether the site is locked for maintenance. No lock
// file, or no configured path, means unlocked.
func (httpserver *HttpServer) getLock(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	state := lockState{}
	if httpserver.lockFilePath != "" {
		raw, err := os.ReadFile(httpserver.lockFilePath)
		switch {
		case err == nil:
			if err := json.Unmarshal(raw, &state); err != nil {
				logger.Warn("lock file is not valid json, treating as locked",
					"path", httpserver.lockFilePath, "error", err)
				state = lockState{Locked: true}
			}
		case !os.IsNotExist(err):
			logger.Warn("failed to read lock file", "path", httpserver.lockFilePath, "error", err)
		}
	}

	writeJsonSuccessResponse(w, state)
}
