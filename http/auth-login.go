package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/gemarathon/backend/auth"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received admin login request")

	if !auth.CheckAdminPassword([]byte(httpserver.adminPasswordHash), request.Password) {
		writeJsonErrorResponse(w,
			"סיסמה שגויה",
			http.StatusUnauthorized,
			"invalid_credentials")
		return
	}

	token, err := auth.GenerateJWT(auth.RoleAdmin, httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		writeJsonInternalServerError(w)
		return
	}

	writeJsonSuccessResponse(w, token)
}
