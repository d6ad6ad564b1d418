// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/service"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStreamServer serves the full router with a real hub. Token "tok-5"
// belongs to user 5, who is a member of room 3 only.
func newStreamServer(t *testing.T) (*httptest.Server, *hub.Hub) {
	t.Helper()
	return newStreamServerWith(t, nil)
}

func newStreamServerWith(t *testing.T, configure func(*Handler)) (*httptest.Server, *hub.Hub) {
	t.Helper()

	h := hub.New(8, logger.Nop())
	t.Cleanup(h.Close)

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			if token != "tok-5" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: 5}, nil
		},
	}
	messages := &mockMessageService{
		subscribeFn: func(_ context.Context, userID, roomID int64) (*hub.Subscriber, error) {
			if roomID != 3 {
				return nil, service.ErrNotRoomMember
			}
			return h.Subscribe(roomID, userID), nil
		},
		unsubscribeFn: h.Unsubscribe,
	}

	handler := newTestHandler(t, &service.Services{AuthService: auth, MessageService: messages})
	if configure != nil {
		configure(handler)
	}
	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)

	return server, h
}

func waitForSubscribers(t *testing.T, h *hub.Hub, roomID int64, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.Subscribers(roomID) == want
	}, 2*time.Second, 10*time.Millisecond)
}

// ─────────────────────────────────────────────
// writeEvent
// ─────────────────────────────────────────────

func TestWriteEvent_SplitsLines(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeEvent(&buf, "message", []byte("{\"a\":1}\r\n{\"b\":2}")))

	assert.Equal(t, "event: message\ndata: {\"a\":1}\ndata: {\"b\":2}\n\n", buf.String())
}

// ─────────────────────────────────────────────
// server-sent events
// ─────────────────────────────────────────────

func TestStreamEvents_RejectsBeforeStreaming(t *testing.T) {
	server, _ := newStreamServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "no token", path: "/messages/stream/3", wantStatus: http.StatusUnauthorized},
		{name: "bad token", path: "/messages/stream/3?token=nope", wantStatus: http.StatusUnauthorized},
		{name: "not a member", path: "/messages/stream/4?token=tok-5", wantStatus: http.StatusForbidden},
		{name: "bad room id", path: "/messages/stream/abc?token=tok-5", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestStreamEvents_DeliversPublishedBatches(t *testing.T) {
	server, h := newStreamServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/messages/stream/3?token=tok-5", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "retry: "), line)

	waitForSubscribers(t, h, 3, 1)
	envelope := `{"roomId":3,"messages":[{"type":"text","data":"x"}]}`
	assert.Equal(t, 1, h.Publish(context.Background(), 3, []byte(envelope)))

	var event []string
	for len(event) < 2 {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimRight(line, "\n"); line != "" {
			event = append(event, line)
		}
	}
	assert.Equal(t, []string{"event: message", "data: " + envelope}, event)

	cancel()
	waitForSubscribers(t, h, 3, 0)
}

// ─────────────────────────────────────────────
// websocket
// ─────────────────────────────────────────────

func wsURL(server *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + path
}

func TestStreamWebSocket_DeliversPublishedBatches(t *testing.T) {
	server, h := newStreamServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(server, "/messages/ws/3?token=tok-5"), nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	waitForSubscribers(t, h, 3, 1)
	envelope := []byte(`{"roomId":3,"messages":[{"type":"text","data":"y"}]}`)
	h.Publish(context.Background(), 3, envelope)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, kind)
	assert.Equal(t, envelope, payload)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	waitForSubscribers(t, h, 3, 0)
}

func TestStreamWebSocket_AuthorizationHeaderFallback(t *testing.T) {
	server, h := newStreamServer(t)

	header := http.Header{"Authorization": []string{"Bearer tok-5"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/messages/ws/3"), header)
	require.NoError(t, err)
	defer conn.Close()

	waitForSubscribers(t, h, 3, 1)
}

func TestStreamWebSocket_NotMemberIsRefusedBeforeUpgrade(t *testing.T) {
	server, h := newStreamServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server, "/messages/ws/4?token=tok-5"), nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, h.Subscribers(4))
}

func TestStreamEvents_KeepAliveOnIdleStream(t *testing.T) {
	server, h := newStreamServerWith(t, func(handler *Handler) {
		handler.sseKeepAlive = 20 * time.Millisecond
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/messages/stream/3?token=tok-5", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	waitForSubscribers(t, h, 3, 1)

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, ":") {
			assert.Equal(t, ": keep-alive\n", line)
			return
		}
		// only the retry hint and blank separators precede the comment
		assert.True(t, strings.HasPrefix(line, "retry:") || line == "\n", "unexpected line %q", line)
	}
}
