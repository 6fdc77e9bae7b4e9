package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/umputun/intelscope/pkg/domain"
	"github.com/umputun/intelscope/pkg/export"
)

// exportHandler serves the trailing-window signal export as JSON or CSV.
// The export engine never fails: when the store is unreachable the
// response is an empty result with status 200, keeping the caller's
// rendering alive.
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	scope, err := domain.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		renderError(w, r, fmt.Errorf("unknown format %q", format), http.StatusBadRequest)
		return
	}

	rows := s.exporter.Rows(r.Context(), scope)

	if format == "csv" {
		filename := fmt.Sprintf("intel-export-%s.csv", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(export.CSV(rows)))
		return
	}

	renderJSON(w, r, http.StatusOK, rows)
}
