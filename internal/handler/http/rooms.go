package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var request models.CreateRoomRequest
	if _, err := decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.createRoom", err)
		return
	}

	room, err := h.services.RoomService.CreateRoom(r.Context(), currentUser(r), request)
	if err != nil {
		writeError(w, r, "*Handler.createRoom", err)
		return
	}

	utils.WriteJSON(w, room, http.StatusCreated)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getRoom", err)
		return
	}

	room, err := h.services.RoomService.GetRoom(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.getRoom", err)
		return
	}

	utils.WriteJSON(w, room, http.StatusOK)
}

func (h *Handler) listVisibleRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.services.RoomService.ListVisibleRooms(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, "*Handler.listVisibleRooms", err)
		return
	}

	utils.WriteJSON(w, nonNil(rooms), http.StatusOK)
}

func (h *Handler) listMyRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.services.RoomService.ListMyRooms(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, "*Handler.listMyRooms", err)
		return
	}

	utils.WriteJSON(w, nonNil(rooms), http.StatusOK)
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateRoom", err)
		return
	}

	var update models.RoomUpdate
	if _, err = decodeBody(r, &update); err != nil {
		writeError(w, r, "*Handler.updateRoom", err)
		return
	}
	update.RoomID = roomID

	room, err := h.services.RoomService.UpdateRoom(r.Context(), currentUser(r), update)
	if err != nil {
		writeError(w, r, "*Handler.updateRoom", err)
		return
	}

	utils.WriteJSON(w, room, http.StatusOK)
}

func (h *Handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	h.roomAction(w, r, "*Handler.deleteRoom", h.services.RoomService.DeleteRoom)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.listMembers", err)
		return
	}

	members, err := h.services.RoomService.ListMembers(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.listMembers", err)
		return
	}

	utils.WriteJSON(w, nonNil(members), http.StatusOK)
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	h.memberAction(w, r, "*Handler.addUser", h.services.RoomService.AddUser)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	h.memberAction(w, r, "*Handler.removeUser", h.services.RoomService.RemoveUser)
}

func (h *Handler) leaveRoom(w http.ResponseWriter, r *http.Request) {
	h.roomAction(w, r, "*Handler.leaveRoom", h.services.RoomService.Leave)
}

func (h *Handler) claimAdmin(w http.ResponseWriter, r *http.Request) {
	h.roomAction(w, r, "*Handler.claimAdmin", h.services.RoomService.ClaimAdmin)
}

func (h *Handler) releaseAdmin(w http.ResponseWriter, r *http.Request) {
	h.roomAction(w, r, "*Handler.releaseAdmin", h.services.RoomService.ReleaseAdmin)
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, "*Handler.joinRoom", err)
		return
	}

	result, err := h.services.RoomService.Join(r.Context(), currentUser(r), roomID)
	if err != nil {
		writeError(w, r, "*Handler.joinRoom", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// roomAction runs an operation of the caller on the room in the path and
// answers 204 on success.
func (h *Handler) roomAction(w http.ResponseWriter, r *http.Request, fn string, action func(ctx context.Context, userID, roomID int64) error) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = action(r.Context(), currentUser(r), roomID); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// memberAction runs an admin operation on the user named in the body.
func (h *Handler) memberAction(w http.ResponseWriter, r *http.Request, fn string, action func(ctx context.Context, adminID, roomID, userID int64) error) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var request models.MemberRequest
	if _, err = decodeBody(r, &request); err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = action(r.Context(), currentUser(r), roomID, request.UserID); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil makes empty listings encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
