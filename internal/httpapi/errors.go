package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeError emits the flat {"error": msg} body the control panel expects on
// every non-2xx response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
