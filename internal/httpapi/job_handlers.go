package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"leadscout-engine/internal/job"
	"leadscout-engine/internal/scraper"
	"leadscout-engine/internal/secrets"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type JobHandler struct {
	Jobs   JobController
	CfgVal *atomic.Value
}

type startReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// Start kicks off a run. The password may be omitted when one is stored in
// the OS keychain for the given email.
func (h JobHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}

	if req.Password == "" {
		pw, err := secrets.GetLinkedInPassword(req.Email)
		if err != nil {
			writeError(w, http.StatusBadRequest, "password is required")
			return
		}
		req.Password = pw
	}

	err := h.Jobs.Start(scraper.Credentials{Email: req.Email, Password: req.Password})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]string{"status": "Scraper started"})
	case eris.Is(err, job.ErrAlreadyRunning), eris.Is(err, job.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h JobHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.Jobs.Stop(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "Stopping scraper"})
}

func (h JobHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.Jobs.Snapshot())
}
