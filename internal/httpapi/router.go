package httpapi

import "net/http"

// NewMux returns the raw mux so main() can wrap it in the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Job control
	jh := JobHandler{Jobs: d.Jobs, CfgVal: d.CfgVal}
	mux.HandleFunc("/start", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: jh.Start,
	}))
	mux.HandleFunc("/stop", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: jh.Stop,
	}))
	mux.HandleFunc("/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Status,
	}))

	// Artifacts
	fh := FilesHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/download_csv", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.DownloadCSV,
	}))
	mux.HandleFunc("/download_summary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.DownloadSummary,
	}))

	// Run history
	rh := RunsHandler{DB: d.DB}
	mux.HandleFunc("/runs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets
	sh := SecretsHandler{}
	mux.HandleFunc("/api/secrets/linkedin", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetLinkedInPassword,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	return mux
}
