package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if _, err := decodeBody(r, &user); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.issueToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if _, err := decodeBody(r, &user); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser, http.StatusOK)
}

// issueToken answers with a fresh token both in the Authorization header and
// in the body, next to the user profile.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.issueToken", err)
		return
	}

	user.Password = ""
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: user}, status)
}
