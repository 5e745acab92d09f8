package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"leadscout-engine/internal/config"
)

// FilesHandler serves the run artifacts for download.
type FilesHandler struct {
	CfgVal *atomic.Value
}

func (h FilesHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	h.serve(w, r, cfg.CSVPath(), "text/csv")
}

func (h FilesHandler) DownloadSummary(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	h.serve(w, r, cfg.SummaryPath(), "text/plain; charset=utf-8")
}

func (h FilesHandler) serve(w http.ResponseWriter, r *http.Request, path, contentType string) {
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}
