package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func echoHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(status)
		if status != http.StatusNoContent {
			w.Write(body)
		}
	})
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	payload := bytes.Repeat([]byte(`{"type":"text","data":"abc"}`), 20)

	req := httptest.NewRequest(http.MethodPost, "/messages/send", bytes.NewReader(payload))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	assert.Equal(t, payload, gunzipBytes(t, rec.Body.Bytes()))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	payload := []byte(`{"roomId":3}`)

	req := httptest.NewRequest(http.MethodPost, "/messages/request-last", bytes.NewReader(gzipBytes(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/messages/send", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, kindValidation, decodeError(t, rec).Kind)
}

func TestWithGZip_SkipsEmptyResponses(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/rooms/1/leave", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusNoContent)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestWithGZip_SkipsStreams(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
	}{
		{name: "event stream", header: "Accept", value: "text/event-stream"},
		{name: "websocket upgrade", header: "Upgrade", value: "websocket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/messages/stream/1", bytes.NewReader([]byte("plain")))
			req.Header.Set("Accept-Encoding", "gzip")
			req.Header.Set(tt.header, tt.value)
			rec := httptest.NewRecorder()

			withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, "plain", rec.Body.String())
		})
	}
}
