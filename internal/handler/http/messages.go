package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

// sendMessages appends a batch and relays the request body, byte for byte,
// to the live subscribers of the room.
func (h *Handler) sendMessages(w http.ResponseWriter, r *http.Request) {
	var request models.SendMessagesRequest
	body, err := decodeBody(r, &request)
	if err != nil {
		writeError(w, r, "*Handler.sendMessages", err)
		return
	}
	request.Envelope = body

	response, err := h.services.MessageService.Send(r.Context(), currentUser(r), request)
	if err != nil {
		writeError(w, r, "*Handler.sendMessages", err)
		return
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) requestLastMessages(w http.ResponseWriter, r *http.Request) {
	var request models.RoomMessagesRequest
	if _, err := decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.requestLastMessages", err)
		return
	}

	messages, err := h.services.MessageService.RequestLast(r.Context(), currentUser(r), request)
	if err != nil {
		writeError(w, r, "*Handler.requestLastMessages", err)
		return
	}

	utils.WriteJSON(w, nonNil(messages), http.StatusOK)
}

func (h *Handler) ackLastMessages(w http.ResponseWriter, r *http.Request) {
	var request models.RoomMessagesRequest
	if _, err := decodeBody(r, &request); err != nil {
		writeError(w, r, "*Handler.ackLastMessages", err)
		return
	}

	if err := h.services.MessageService.AckLast(r.Context(), currentUser(r), request); err != nil {
		writeError(w, r, "*Handler.ackLastMessages", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
