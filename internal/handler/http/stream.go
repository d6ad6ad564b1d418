// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/hub"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/gorilla/websocket"
)

// subscribe resolves the stream identity and registers a live subscriber.
// Errors are written to w; nil is returned in that case.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request, fn string) (*hub.Subscriber, *http.Request) {
	roomID, err := roomIDParam(r)
	if err != nil {
		writeError(w, r, fn, err)
		return nil, r
	}

	userID, err := h.streamIdentity(r)
	if err != nil {
		writeError(w, r, fn, err)
		return nil, r
	}
	r = r.WithContext(h.withUser(r.Context(), userID))

	sub, err := h.services.MessageService.Subscribe(r.Context(), userID, roomID)
	if err != nil {
		writeError(w, r, fn, err)
		return nil, r
	}

	return sub, r
}

// streamIdentity reads the token from the "token" query parameter, falling
// back to the Authorization header for clients that can set one.
func (h *Handler) streamIdentity(r *http.Request) (int64, error) {
	if token := r.URL.Query().Get(streamTokenParam); token != "" {
		return h.parseToken(r.Context(), token)
	}
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return h.authenticate(r.Context(), authHeader)
	}
	return 0, ErrEmptyStreamToken
}

// streamEvents serves the live message stream as server-sent events. Every
// relayed batch becomes one "message" event. Once the stream has started,
// failures can only end it.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, "*Handler.streamEvents", errStreamingUnsupported)
		return
	}

	sub, r := h.subscribe(w, r, "*Handler.streamEvents")
	if sub == nil {
		return
	}
	defer h.services.MessageService.Unsubscribe(sub)

	log := logger.FromRequest(r)
	log.Info().Int64("room_id", sub.RoomID).Msg("event stream opened")

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "retry: %d\n\n", h.sseRetry.Milliseconds())
	flusher.Flush()

	keepAlive := time.NewTicker(h.sseKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Info().Int64("room_id", sub.RoomID).Msg("event stream closed by client")
			return
		case <-sub.Done():
			return
		case <-keepAlive.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case payload, ok := <-sub.Messages():
			if !ok {
				return
			}
			if err := writeEvent(w, "message", payload); err != nil {
				log.Debug().Err(err).Str("func", "*Handler.streamEvents").Msg("write to event stream failed")
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent frames payload as one event. Each line gets its own data field
// so payloads containing newlines survive.
func writeEvent(w io.Writer, event string, payload []byte) error {
	var buf bytes.Buffer
	buf.WriteString("event: ")
	buf.WriteString(event)
	buf.WriteByte('\n')
	for _, line := range bytes.Split(payload, []byte{'\n'}) {
		buf.WriteString("data: ")
		buf.Write(bytes.TrimSuffix(line, []byte{'\r'}))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

// streamWebSocket serves the same live stream over a WebSocket. Each relayed
// batch is sent as one text frame. Frames from the client are ignored.
func (h *Handler) streamWebSocket(w http.ResponseWriter, r *http.Request) {
	sub, r := h.subscribe(w, r, "*Handler.streamWebSocket")
	if sub == nil {
		return
	}
	defer h.services.MessageService.Unsubscribe(sub)

	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the request
		log.Warn().Err(err).Str("func", "*Handler.streamWebSocket").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Info().Int64("room_id", sub.RoomID).Msg("websocket stream opened")

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
					!errors.Is(err, net.ErrClosed) {
					log.Debug().Err(err).Str("func", "*Handler.streamWebSocket").Msg("websocket read ended")
				}
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			log.Info().Int64("room_id", sub.RoomID).Msg("websocket stream closed by client")
			return
		case <-sub.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(wsWriteWait))
			return
		case <-ping.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		case payload, ok := <-sub.Messages():
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Debug().Err(err).Str("func", "*Handler.streamWebSocket").Msg("write to websocket failed")
				return
			}
		}
	}
}
