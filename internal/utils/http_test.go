package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cipher-rooms/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.JoinResult{RoomID: 3, AlreadyInRoom: true}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_ErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.ErrorResponse{Error: "room not found", Kind: "not_found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if w.Body.String() != `{"error":"room not found","kind":"not_found"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestDecodeJSON_ReturnsRawBody(t *testing.T) {
	body := `{"roomId":5,"messages":[{"type":"text","data":"Y2lwaGVy","extra":1}]}`
	r := httptest.NewRequest(http.MethodPost, "/messages/send", strings.NewReader(body))

	var req models.SendMessagesRequest
	raw, err := DecodeJSON(r, &req)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(raw) != body {
		t.Errorf("expected raw body to be preserved, got %s", raw)
	}
	if req.RoomID != 5 || len(req.Messages) != 1 || req.Messages[0].Type != "text" {
		t.Errorf("unexpected decoded request: %+v", req)
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/rooms", http.NoBody)

	var req models.CreateRoomRequest
	_, err := DecodeJSON(r, &req)

	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader("{not json"))

	var req models.CreateRoomRequest
	_, err := DecodeJSON(r, &req)

	if err == nil {
		t.Fatal("expected decoding error, got nil")
	}
}
