package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httplog/v2"
)

// exportBoard streams the current standings as CSV. The UTF-8 BOM is
// required for Excel to pick up the Hebrew text correctly.
func (httpserver *HttpServer) exportBoard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	view := httpserver.boardSrvc.GetBoard(r.Context(), 10)

	filename := fmt.Sprintf("gemarathon-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		logger.Warn("failed to write csv bom", "error", err)
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"שם", "כיתה", "ניקוד", "סוגיות", "כרטיסיות"}); err != nil {
		logger.Warn("failed to write csv header", "error", err)
		return
	}

	for _, student := range view.Students {
		record := []string{
			student.Name,
			student.Grade,
			strconv.FormatFloat(student.Score, 'f', -1, 64),
			strconv.Itoa(len(student.SugiotCompleted)),
			strconv.Itoa(len(student.KartisiotCompleted)),
		}
		if err := writer.Write(record); err != nil {
			logger.Warn("failed to write csv record", "error", err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Warn("failed to flush csv", "error", err)
	}
}
