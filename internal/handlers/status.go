package handlers

import (
	"encoding/json"
	"net/http"
)

// StatusResponse reports API liveness
// swagger:model StatusResponse
type StatusResponse struct {
	// Status
	// default: online
	Status string `json:"status"`

	// Storage engine
	// default: PostgreSQL
	Engine string `json:"engine"`
}

// NewStatusHandler returns an HTTP handler for the liveness probe.
// @Summary API status
// @Description Reports that the API is reachable
// @Tags status
// @Produce json
// @Success 200 {object} handlers.StatusResponse "API is online"
// @Router /status [get]
func NewStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{
			Status: "online",
			Engine: "PostgreSQL",
		})
	}
}
