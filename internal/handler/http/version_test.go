package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "1.4.2"}})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.2", rec.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		healthErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantBody: `{"status":"ok","version":"1.0.0"}`},
		{name: "database down", healthErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable","version":"1.0.0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appInfo := &mockAppInfoService{
				version:  "1.0.0",
				healthFn: func(context.Context) error { return tt.healthErr },
			}
			h := newTestHandler(t, &service.Services{AppInfoService: appInfo})

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
