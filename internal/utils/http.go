package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by [DecodeJSON] when the request has no body.
var ErrEmptyBody = errors.New("empty request body")

// maxBodySize bounds request bodies; message batches are the largest payload.
const maxBodySize = 16 << 20

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadBody reads the whole request body, bounded by maxBodySize.
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, ErrEmptyBody
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	return body, nil
}

// DecodeJSON reads the request body and decodes it into dst.
// It returns the raw body so callers can forward it unchanged.
func DecodeJSON(r *http.Request, dst any) ([]byte, error) {
	body, err := ReadBody(r)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return nil, fmt.Errorf("error decoding request body: %w", err)
	}

	return body, nil
}
