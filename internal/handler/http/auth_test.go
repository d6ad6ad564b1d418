// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{AuthService: auth})
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

const validUserBody = `{"login":"alice","password":"secret-pass","publicKey":"pk-alice"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Login)
			assert.Equal(t, "pk-alice", u.PublicKey)
			u.UserID = 7
			u.Password = ""
			return u, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, int64(7), u.UserID)
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(validUserBody))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
	assert.NotContains(t, rec.Body.String(), "secret-pass")
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantKind   string
	}{
		{name: "invalid JSON", body: "{invalid json}", wantStatus: http.StatusBadRequest, wantKind: kindValidation},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantKind: kindValidation},
		{
			name:       "validation failure",
			body:       validUserBody,
			serviceErr: errors.Join(service.ErrInvalidDataProvided, errors.New("login is too short")),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
		{
			name:       "login taken",
			body:       validUserBody,
			serviceErr: store.ErrLoginAlreadyExists,
			wantStatus: http.StatusConflict,
			wantKind:   kindConflict,
		},
		{
			name:       "storage failure",
			body:       validUserBody,
			serviceErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   kindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			h := newHandlerWithAuth(t, auth)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantKind, decodeError(t, rec).Kind)
		})
	}
}

func TestRegister_StorageErrorIsNotLeaked(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.New("pq: relation users does not exist")
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(validUserBody)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(validUserBody)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "secret-pass", u.Password)
			return models.User{UserID: 3, Login: u.Login, Name: "Alice"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("login.jwt"), nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(validUserBody)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer login.jwt", rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "login.jwt", resp.Token)
	assert.Equal(t, "Alice", resp.User.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(validUserBody)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, kindUnauthorized, resp.Kind)
	assert.Equal(t, service.ErrWrongPassword.Error(), resp.Error)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"login":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, errInvalidJSON.Error())
}
