package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var request models.ProfileUpdateRequest
	if _, err := decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), currentUser(r), request)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	var request models.DeleteAccountRequest
	if _, err := decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.deleteAccount", err)
		return
	}

	if err := h.services.UserService.DeleteAccount(r.Context(), currentUser(r), request.Password); err != nil {
		writeError(w, r, "*Handler.deleteAccount", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getPublicKey", err)
		return
	}

	publicKey, err := h.services.UserService.GetPublicKey(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getPublicKey", err)
		return
	}

	utils.WriteJSON(w, publicKey, http.StatusOK)
}
