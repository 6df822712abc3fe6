package handlers

import "context"

// Pinger reports storage connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the health check operation.
type HealthHandler struct {
	db      Pinger
	version string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Check reports service health and version. The status code stays 200;
// storage trouble is reflected in the message.
func (h *HealthHandler) Check(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Message = "Healthy !"
	resp.Body.Version = h.version

	if err := h.db.Ping(ctx); err != nil {
		resp.Body.Message = "Degraded: database unreachable"
	}

	return resp, nil
}
