package http

import (
	"net/http"

	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports 503 while the database is unreachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx)

	if err := h.services.AppInfoService.Health(ctx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("health check failed")
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable", Version: version}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Version: version}, http.StatusOK)
}
