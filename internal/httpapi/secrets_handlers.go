package httpapi

import (
	"encoding/json"
	"net/http"

	"leadscout-engine/internal/secrets"
)

type SecretsHandler struct{}

type setLinkedInPasswordReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SetLinkedInPassword stores credentials in the OS keychain so later /start
// requests can omit the password.
func (h SecretsHandler) SetLinkedInPassword(w http.ResponseWriter, r *http.Request) {
	var req setLinkedInPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if err := secrets.SetLinkedInPassword(req.Email, req.Password); err != nil {
		writeError(w, http.StatusBadRequest, "failed to store password: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
