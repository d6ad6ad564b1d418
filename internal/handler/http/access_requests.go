// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// askForAccess opens a request awaiting the admin's decision. The room is
// named in the body, not in the path.
func (h *Handler) askForAccess(w http.ResponseWriter, r *http.Request) {
	var request models.AskForAccessRequest
	if _, err := decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.askForAccess", err)
		return
	}

	accessRequest, err := h.services.AccessRequestService.AskForAccess(r.Context(), currentUser(r), request.RoomID)
	if err != nil {
		writeError(w, r, "*Handler.askForAccess", err)
		return
	}

	utils.WriteJSON(w, accessRequest, http.StatusCreated)
}

func (h *Handler) requestJoinByPassword(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.requestJoinByPassword", err)
		return
	}

	accessRequest, err := h.services.AccessRequestService.RequestJoinByPassword(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.requestJoinByPassword", err)
		return
	}

	utils.WriteJSON(w, accessRequest, http.StatusCreated)
}

// declarePasswordCheck takes the verification lock on a joiner's request.
// A lock held by another member is answered with kind password_check_locked.
func (h *Handler) declarePasswordCheck(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.declarePasswordCheck", err)
		return
	}

	var request models.DeclarePasswordCheckRequest
	if _, err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.declarePasswordCheck", err)
		return
	}

	if err = h.services.AccessRequestService.DeclarePasswordCheck(r.Context(), currentUser(r), roomID, request.UserID); err != nil {
		writeError(w, r, "*Handler.declarePasswordCheck", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendEncryptedPassword(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.sendEncryptedPassword", err)
		return
	}

	var request models.SendEncryptedPasswordRequest
	if _, err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.sendEncryptedPassword", err)
		return
	}

	if err = h.services.AccessRequestService.SendEncryptedPassword(r.Context(), currentUser(r), roomID, request.EncryptedPassword); err != nil {
		writeError(w, r, "*Handler.sendEncryptedPassword", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendRoomKey(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.sendRoomKey", err)
		return
	}

	var request models.SendRoomKeyRequest
	if _, err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.sendRoomKey", err)
		return
	}

	if err = h.services.AccessRequestService.SendRoomKey(r.Context(), currentUser(r), roomID, request); err != nil {
		writeError(w, r, "*Handler.sendRoomKey", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rejectPassword(w http.ResponseWriter, r *http.Request) {
	h.requestAction(w, r, "*Handler.rejectPassword", h.services.AccessRequestService.RejectPassword)
}

func (h *Handler) resetPasswordCheck(w http.ResponseWriter, r *http.Request) {
	h.requestAction(w, r, "*Handler.resetPasswordCheck", h.services.AccessRequestService.ResetPasswordCheck)
}

func (h *Handler) requestKeyAgain(w http.ResponseWriter, r *http.Request) {
	h.roomAction(w, r, "*Handler.requestKeyAgain", h.services.AccessRequestService.RequestKeyAgain)
}

func (h *Handler) respondToRequest(w http.ResponseWriter, r *http.Request) {
	roomID, userID, err := requestPathParams(r)
	if err != nil {
		writeError(w, r, "*Handler.respondToRequest", err)
		return
	}

	var request models.RespondRequest
	if _, err = decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.respondToRequest", err)
		return
	}

	if err = h.services.AccessRequestService.RespondToRequest(r.Context(), currentUser(r), roomID, userID, request); err != nil {
		writeError(w, r, "*Handler.respondToRequest", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRoomRequests(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.listRoomRequests", err)
		return
	}

	requests, err := h.services.AccessRequestService.ListRoomRequests(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.listRoomRequests", err)
		return
	}

	utils.WriteJSON(w, nonNil(requests), http.StatusOK)
}

func (h *Handler) roomUsersStatus(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.roomUsersStatus", err)
		return
	}

	statuses, err := h.services.AccessRequestService.RoomUsersStatus(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.roomUsersStatus", err)
		return
	}

	utils.WriteJSON(w, nonNil(statuses), http.StatusOK)
}

func (h *Handler) getMyRequest(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getMyRequest", err)
		return
	}

	accessRequest, err := h.services.AccessRequestService.GetMyRequest(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.getMyRequest", err)
		return
	}

	utils.WriteJSON(w, accessRequest, http.StatusOK)
}

func (h *Handler) cancelMyRequest(w http.ResponseWriter, r *http.Request) {
	h.roomAction(w, r, "*Handler.cancelMyRequest", h.services.AccessRequestService.CancelMyRequest)
}

// requestAction runs a member operation on the request of the user named in
// the path.
func (h *Handler) requestAction(w http.ResponseWriter, r *http.Request, fn string, action func(ctx context.Context, memberID, roomID, userID int64) error) {
	roomID, userID, err := requestPathParams(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = action(r.Context(), currentUser(r), roomID, userID); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func requestPathParams(r *http.Request) (roomID, userID int64, err error) {
	if roomID, err = roomIDParam(r); err != nil {
		return 0, 0, err
	}
	if userID, err = userIDParam(r); err != nil {
		return 0, 0, err
	}
	return roomID, userID, nil
}
