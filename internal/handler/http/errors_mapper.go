package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/go-chi/chi/v5"
)

// Error kinds reported to clients in [models.ErrorResponse].
const (
	kindValidation          = "validation"
	kindUnauthorized        = "unauthorized"
	kindForbidden           = "forbidden"
	kindConflict            = "conflict"
	kindPasswordCheckLocked = "password_check_locked"
	kindNotFound            = "not_found"
	kindInternal            = "internal"
)

type errorClass struct {
	target error
	status int
	kind   string
}

// errorStatusMap is matched in order, so more specific sentinels come first.
var errorStatusMap = []errorClass{
	{store.ErrTransient, http.StatusServiceUnavailable, kindInternal},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, kindValidation},
	{service.ErrCannotCheckOwnRequest, http.StatusBadRequest, kindValidation},
	{utils.ErrEmptyBody, http.StatusBadRequest, kindValidation},
	{errInvalidJSON, http.StatusBadRequest, kindValidation},
	{errInvalidPathParam, http.StatusBadRequest, kindValidation},
	{errInvalidGzipBody, http.StatusBadRequest, kindValidation},

	{service.ErrWrongPassword, http.StatusUnauthorized, kindUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, kindUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, kindUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, kindUnauthorized},
	{ErrEmptyStreamToken, http.StatusUnauthorized, kindUnauthorized},

	{service.ErrNotRoomMember, http.StatusForbidden, kindForbidden},
	{service.ErrNotRoomAdmin, http.StatusForbidden, kindForbidden},
	{service.ErrRoomNotPublic, http.StatusForbidden, kindForbidden},
	{store.ErrAdminMismatch, http.StatusForbidden, kindForbidden},

	{store.ErrPasswordCheckLocked, http.StatusConflict, kindPasswordCheckLocked},

	{store.ErrLoginAlreadyExists, http.StatusConflict, kindConflict},
	{store.ErrAccessRequestExists, http.StatusConflict, kindConflict},
	{store.ErrInvalidAccessRequestState, http.StatusConflict, kindConflict},
	{store.ErrAdminAlreadySet, http.StatusConflict, kindConflict},
	{service.ErrAlreadyInRoom, http.StatusConflict, kindConflict},
	{service.ErrRoomHasNoPassword, http.StatusConflict, kindConflict},

	{store.ErrNoUserWasFound, http.StatusNotFound, kindNotFound},
	{store.ErrRoomNotFound, http.StatusNotFound, kindNotFound},
	{store.ErrMembershipNotFound, http.StatusNotFound, kindNotFound},
	{store.ErrAccessRequestNotFound, http.StatusNotFound, kindNotFound},
	{store.ErrReferencedEntityNotFound, http.StatusNotFound, kindNotFound},
}

var internalError = errorClass{status: http.StatusInternalServerError, kind: kindInternal}

func classifyError(err error) errorClass {
	for _, class := range errorStatusMap {
		if errors.Is(err, class.target) {
			return class
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return classifyError(err).status
}

// writeError logs err and answers with its status and kind. Client errors
// carry the message of the matched sentinel, the rest a generic text, so
// storage details never leak.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	class := classifyError(err)
	log := logger.FromRequest(r)

	message := http.StatusText(class.status)
	if class.status < http.StatusInternalServerError {
		message = class.target.Error()
		if class.kind == kindValidation {
			message = err.Error()
		}
		log.Warn().Err(err).Str("func", fn).Int("status", class.status).Msg("request refused")
	} else {
		log.Err(err).Str("func", fn).Int("status", class.status).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message, Kind: class.kind}, class.status)
}

// decodeBody decodes the JSON body into dst and returns the raw bytes.
func decodeBody(r *http.Request, dst any) ([]byte, error) {
	body, err := utils.DecodeJSON(r, dst)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return body, nil
}

func int64URLParam(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s", errInvalidPathParam, name)
	}
	return value, nil
}
