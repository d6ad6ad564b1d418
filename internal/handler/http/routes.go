package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the public API.
//
// Live streams are registered outside the compression and timeout group:
// they are long-lived and must be flushed event by event.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/version", h.getServerVersion)

	// stream identity comes from the token query parameter
	router.Get("/messages/stream/{roomId}", h.streamEvents)
	router.Get("/messages/ws/{roomId}", h.streamWebSocket)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Put("/user", h.updateProfile)
			r.Delete("/user", h.deleteAccount)
			r.Get("/users/{userId}/publicKey", h.getPublicKey)

			r.Get("/rooms", h.listVisibleRooms)
			r.Post("/rooms", h.createRoom)
			r.Get("/rooms/mine", h.listMyRooms)
			r.Post("/rooms/askForAccess", h.askForAccess)

			r.Get("/rooms/{roomId}", h.getRoom)
			r.Put("/rooms/{roomId}", h.updateRoom)
			r.Delete("/rooms/{roomId}", h.deleteRoom)
			r.Get("/rooms/{roomId}/users", h.listMembers)

			r.Post("/rooms/{roomId}/add-user", h.addUser)
			r.Post("/rooms/{roomId}/remove-user", h.removeUser)
			r.Post("/rooms/{roomId}/leave", h.leaveRoom)
			r.Post("/rooms/{roomId}/set-admin", h.claimAdmin)
			r.Post("/rooms/{roomId}/unset-admin", h.releaseAdmin)
			r.Post("/rooms/{roomId}/join", h.joinRoom)

			r.Post("/rooms/{roomId}/request-join-by-password", h.requestJoinByPassword)
			r.Post("/rooms/{roomId}/declare-password-check", h.declarePasswordCheck)
			r.Post("/rooms/{roomId}/send-encrypted-password", h.sendEncryptedPassword)
			r.Post("/rooms/{roomId}/send-room-key", h.sendRoomKey)
			r.Post("/rooms/{roomId}/reject-password/{userId}", h.rejectPassword)
			r.Post("/rooms/{roomId}/request-key-again", h.requestKeyAgain)
			r.Post("/rooms/{roomId}/reset-password-check/{userId}", h.resetPasswordCheck)
			r.Post("/rooms/{roomId}/requests/{userId}/respond", h.respondToRequest)

			r.Get("/rooms/{roomId}/requests", h.listRoomRequests)
			r.Get("/rooms/{roomId}/room_users_status", h.roomUsersStatus)
			r.Get("/rooms/{roomId}/my-request", h.getMyRequest)
			r.Delete("/rooms/{roomId}/my-request", h.cancelMyRequest)

			r.Post("/messages/send", h.sendMessages)
			r.Post("/messages/request-last", h.requestLastMessages)
			r.Post("/messages/ack-last", h.ackLastMessages)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func roomIDParam(r *http.Request) (int64, error) {
	return int64URLParam(r, "roomId")
}

func userIDParam(r *http.Request) (int64, error) {
	return int64URLParam(r, "userId")
}
