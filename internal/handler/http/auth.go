package http

import (
	"encoding/json"
	"net/http"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.AuthService.Status(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, status)
}

type unlockRequest struct {
	Password string `json:"password"`
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeJSON(w, r, models.Fail("invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Unlock(r.Context(), req.Password)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, models.StringResponse{
		Object:  "message",
		Title:   "Your vault is now unlocked!",
		Message: "Pass the session token to subsequent requests in the Session header.",
		Raw:     token,
	})
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	h.services.AuthService.Lock(r.Context())

	writeSuccess(w, r, models.StringResponse{
		Object: "message",
		Title:  "Your vault is locked.",
	})
}
