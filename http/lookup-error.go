package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gemarathon/backend/srvcerror"
	"github.com/gemarathon/backend/xlsxstore"
)

// handleJsonLookupError renders service errors and, for failed class or
// student lookups, includes the resolver diagnostics so the caller can
// see what names were tried and what the workbook actually holds.
func handleJsonLookupError(logger *slog.Logger, w http.ResponseWriter, err error) {
	var classErr *xlsxstore.ClassNotFoundError
	if errors.As(err, &classErr) {
		writeJsonLookupError(w, err, map[string]any{
			"grade":           classErr.Grade,
			"availableSheets": classErr.Available,
		})
		return
	}

	var studentErr *xlsxstore.StudentNotFoundError
	if errors.As(err, &studentErr) {
		writeJsonLookupError(w, err, map[string]any{
			"name":              studentErr.Name,
			"grade":             studentErr.Grade,
			"triedNames":        studentErr.TriedNames,
			"availableStudents": studentErr.AvailableStudents,
		})
		return
	}

	handleJsonSrvcError(logger, w, err)
}

func writeJsonLookupError(w http.ResponseWriter, err error, details map[string]any) {
	status := http.StatusNotFound
	code := "not_found"
	msg := err.Error()

	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		status = srvcErr.HttpStatusCode()
		code = srvcErr.ErrorCode()
		msg = srvcErr.Error()
	}

	resp := JsonResponse{
		Status:  "error",
		Data:    details,
		ErrMsg:  msg,
		ErrCode: code,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
