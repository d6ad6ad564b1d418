package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, signed with another key or issued by someone else
//     ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		userID, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(h.withUser(r.Context(), userID)))
	})
}

// authenticate parses an "Authorization" header value and returns the user
// it was issued to.
func (h *Handler) authenticate(ctx context.Context, authHeader string) (int64, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return 0, ErrInvalidAuthorizationHeader
	}

	return h.parseToken(ctx, tokenString)
}

func (h *Handler) parseToken(ctx context.Context, tokenString string) (int64, error) {
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return 0, err
	}
	return token.UserID, nil
}

// withUser stores userID in ctx and tags the request logger with it.
func (h *Handler) withUser(ctx context.Context, userID int64) context.Context {
	l := logger.FromContext(ctx).With().Int64("user_id", userID).Logger()
	return utils.WithUserID(l.WithContext(ctx), userID)
}

// currentUser returns the id stored by [Handler.auth]. Handlers behind the
// middleware can rely on it being present.
func currentUser(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}
