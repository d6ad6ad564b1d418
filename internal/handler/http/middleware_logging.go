package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
)

// withLogging writes one access log entry per request once the handler
// returns. For streams that is when the subscriber disconnects.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := loggedURI(r.URL)
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// loggedURI returns the request URI with the stream token masked.
func loggedURI(u *url.URL) string {
	query := u.Query()
	if !query.Has(streamTokenParam) {
		return u.RequestURI()
	}

	query.Set(streamTokenParam, "REDACTED")
	masked := *u
	masked.RawQuery = query.Encode()
	return masked.RequestURI()
}
